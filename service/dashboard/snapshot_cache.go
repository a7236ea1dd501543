package dashboard

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/zzrilakkuma/sales-activity-management-system/config"
	"github.com/zzrilakkuma/sales-activity-management-system/core/cache"
)

const (
	snapshotKey = "dashboard:snapshot"
	snapshotTTL = 5 * time.Minute
	cacheTag    = "dashboard"
)

// CachedSnapshot serves the dashboard from cache, computing and storing it
// on a miss. Redis is preferred when configured; the in-process cache is
// the fallback.
func CachedSnapshot(db *gorm.DB) (*Snapshot, error) {
	if config.RedisClient != nil {
		raw, err := config.RedisClient.Get(config.RedisCtx(), snapshotKey).Result()
		if err == nil {
			var snap Snapshot
			if json.Unmarshal([]byte(raw), &snap) == nil {
				return &snap, nil
			}
		}
	} else {
		var snap Snapshot
		if cache.GetInstance().GetJSON(snapshotKey, &snap) {
			return &snap, nil
		}
	}
	return Refresh(db)
}

// Refresh recomputes the snapshot and writes it to the cache. Called from
// the dashboard_refresh cron job and on cache misses.
func Refresh(db *gorm.DB) (*Snapshot, error) {
	snap, err := GetSnapshot(db)
	if err != nil {
		return nil, err
	}

	if config.RedisClient != nil {
		b, err := json.Marshal(snap)
		if err != nil {
			return nil, fmt.Errorf("marshal snapshot: %w", err)
		}
		if err := config.RedisClient.Set(config.RedisCtx(), snapshotKey, b, snapshotTTL).Err(); err != nil {
			// Serve the fresh snapshot even when the cache write fails
			log.Printf("dashboard: redis set failed: %v", err)
		}
	} else {
		if err := cache.GetInstance().SetJSON(snapshotKey, snap, int64(snapshotTTL.Seconds()), []string{cacheTag}); err != nil {
			log.Printf("dashboard: cache set failed: %v", err)
		}
	}
	return snap, nil
}

// Invalidate drops the cached snapshot (in-process cache only; Redis keys
// expire on their own).
func Invalidate() {
	if config.RedisClient != nil {
		config.RedisClient.Del(config.RedisCtx(), snapshotKey)
		return
	}
	cache.GetInstance().InvalidateTag(cacheTag)
}
