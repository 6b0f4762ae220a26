package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/poketeam-api/internal/entities/pokemon"
)

const (
	teamPattern  = "team:*"
	indexPattern = "team:user:*"
	indexPrefix  = "team:user:"
	teamPrefix   = "team:"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning saved team indexes...")

	// team id -> owning index key
	indexed := make(map[string]string)
	danglingRefs := make(map[string][]any)

	iter := client.Scan(ctx, 0, indexPattern, 0).Iterator()
	for iter.Next(ctx) {
		indexKey := iter.Val()
		ids, err := client.ZRange(ctx, indexKey, 0, -1).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", indexKey, err)
			continue
		}
		for _, id := range ids {
			indexed[id] = indexKey
			n, err := client.Exists(ctx, teamPrefix+id).Result()
			if err == nil && n == 0 {
				fmt.Printf("✗ %s references missing team %s\n", indexKey, id)
				danglingRefs[indexKey] = append(danglingRefs[indexKey], id)
			}
		}
	}
	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Println("Scanning saved teams...")

	var badKeys []string
	var checkedCount int

	iter = client.Scan(ctx, 0, teamPattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, indexPrefix) {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var record pokemon.TeamRecord
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			badKeys = append(badKeys, key)
			continue
		}

		id := strings.TrimPrefix(key, teamPrefix)
		if record.ID != id {
			fmt.Printf("✗ %s holds team %q\n", key, record.ID)
			badKeys = append(badKeys, key)
			continue
		}
		if _, ok := indexed[id]; !ok {
			fmt.Printf("✗ %s is not in any user's index\n", key)
			badKeys = append(badKeys, key)
		}
	}
	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d teams, found %d bad teams and %d indexes with missing teams\n",
		checkedCount, len(badKeys), len(danglingRefs))

	if len(badKeys) == 0 && len(danglingRefs) == 0 {
		fmt.Println("No orphaned data found!")
		return
	}

	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range badKeys {
		pipe := client.TxPipeline()
		pipe.Del(ctx, key)
		if indexKey, ok := indexed[strings.TrimPrefix(key, teamPrefix)]; ok {
			pipe.ZRem(ctx, indexKey, strings.TrimPrefix(key, teamPrefix))
		}
		if _, err := pipe.Exec(ctx); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	for indexKey, ids := range danglingRefs {
		if err := client.ZRem(ctx, indexKey, ids...).Err(); err != nil {
			fmt.Printf("Failed to clean %s: %v\n", indexKey, err)
		} else {
			fmt.Printf("Removed %d missing teams from %s\n", len(ids), indexKey)
		}
	}
	fmt.Println("\nCleanup complete!")
}
