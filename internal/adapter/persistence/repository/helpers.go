package repository

import (
	"sort"
	"time"

	"quotedesk/internal/domain/entities"
)

// namespacedKey prefixes key with ns so several tenants can share one table.
func namespacedKey(ns, key string) string {
	if ns == "" {
		return key
	}
	return ns + ":" + key
}

func nowString() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// sortInvitations orders oldest first, then by id.
func sortInvitations(items []entities.TeamInvitation) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}
