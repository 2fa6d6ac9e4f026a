package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()
var rdb *redis.Client

const readingTTL = 24 * time.Hour

func InitRedis(addr string, db int) error {
	rdb = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	fmt.Println("[REDIS] connected")
	return nil
}

// SaveStringSafe writes a per-device state key, logging instead of failing.
func SaveStringSafe(key, value string) {
	if rdb == nil {
		fmt.Println("[WARN] redis not initialized")
		return
	}
	if err := rdb.Set(ctx, key, value, readingTTL).Err(); err != nil {
		fmt.Printf("[ERROR] redis SET %s: %v\n", key, err)
	}
}

func GetStringSafe(key string) string {
	if rdb == nil {
		return ""
	}
	val, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return ""
	}
	return val
}

// SaveReadingSafe stores the latest decoded reading JSON for a device.
func SaveReadingSafe(devEUI, readingJSON string) bool {
	if rdb == nil {
		fmt.Println("[WARN] redis not initialized")
		return false
	}
	if err := rdb.Set(ctx, "dev:"+devEUI+":last", readingJSON, readingTTL).Err(); err != nil {
		fmt.Printf("[ERROR] redis SET dev:%s:last: %v\n", devEUI, err)
		return false
	}
	return true
}

// GetReading returns the latest reading JSON for a device, if any.
func GetReading(devEUI string) (string, bool) {
	if rdb == nil {
		return "", false
	}
	val, err := rdb.Get(ctx, "dev:"+devEUI+":last").Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// IncDailyUplinkCounter bumps the device's daily uplink counter and reports
// whether it is still under limit. The key expires with the day.
func IncDailyUplinkCounter(devEUI string, limit int) (bool, int64, error) {
	if rdb == nil {
		return true, 0, nil
	}
	key := "dev:" + devEUI + ":uplinks:" + time.Now().Format("20060102")
	n, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return true, 0, err
	}
	if n == 1 {
		_ = rdb.Expire(ctx, key, 48*time.Hour).Err()
	}
	return limit <= 0 || n <= int64(limit), n, nil
}
