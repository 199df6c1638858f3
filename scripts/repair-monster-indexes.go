package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Minimal view of a stored monster record, enough to rebuild index membership
type monsterRecord struct {
	ID   string   `json:"ID"`
	Tags []string `json:"Tags"`
}

const (
	recordPrefix   = "monster:"
	scoresPrefix   = "monster:scores:"
	allMonstersKey = "monster:all"
	tagIndexPrefix = "monster:tag:"
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
	fmt.Println("Scanning monster records...")

	// Pass 1: read every record, note corrupted ones, and rebuild the
	// expected index membership from the records themselves.
	records := make(map[string][]string) // monster ID -> tag codes
	var corruptedKeys []string
	var checkedCount int

	iter := client.Scan(ctx, 0, recordPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		// monster:* also matches the score and index keys
		if strings.HasPrefix(key, scoresPrefix) || strings.HasPrefix(key, tagIndexPrefix) || key == allMonstersKey {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var rec monsterRecord
		if err := json.Unmarshal([]byte(data), &rec); err != nil || rec.ID == "" {
			fmt.Printf("✗ Corrupted record at %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}
		records[rec.ID] = rec.Tags
	}
	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	// Pass 2: diff the id set against the records.
	knownIDs, err := client.SMembers(ctx, allMonstersKey).Result()
	if err != nil {
		log.Fatal("Failed to read id set:", err)
	}

	var staleIDs []string
	for _, id := range knownIDs {
		if _, ok := records[id]; !ok {
			fmt.Printf("✗ Stale id in %s: %s has no record\n", allMonstersKey, id)
			staleIDs = append(staleIDs, id)
		}
	}
	inIDSet := make(map[string]bool, len(knownIDs))
	for _, id := range knownIDs {
		inIDSet[id] = true
	}
	var missingIDs []string
	for id := range records {
		if !inIDSet[id] {
			fmt.Printf("✗ Record %s missing from %s\n", id, allMonstersKey)
			missingIDs = append(missingIDs, id)
		}
	}

	// Pass 3: diff each tag index against the records' tag lists.
	staleTagMembers := make(map[string][]string) // index key -> ids to remove
	missingTagMembers := make(map[string][]string)

	tagIter := client.Scan(ctx, 0, tagIndexPrefix+"*", 0).Iterator()
	for tagIter.Next(ctx) {
		indexKey := tagIter.Val()
		code := strings.TrimPrefix(indexKey, tagIndexPrefix)

		members, err := client.SMembers(ctx, indexKey).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", indexKey, err)
			continue
		}
		for _, id := range members {
			tags, ok := records[id]
			if ok && containsTag(tags, code) {
				continue
			}
			fmt.Printf("✗ Stale member in %s: %s\n", indexKey, id)
			staleTagMembers[indexKey] = append(staleTagMembers[indexKey], id)
		}
	}
	if err := tagIter.Err(); err != nil {
		log.Fatal("Error during tag index scan:", err)
	}
	for id, tags := range records {
		for _, code := range tags {
			indexKey := tagIndexPrefix + code
			isMember, err := client.SIsMember(ctx, indexKey, id).Result()
			if err != nil {
				fmt.Printf("Error checking %s: %v\n", indexKey, err)
				continue
			}
			if !isMember {
				fmt.Printf("✗ Record %s missing from %s\n", id, indexKey)
				missingTagMembers[indexKey] = append(missingTagMembers[indexKey], id)
			}
		}
	}

	problems := len(corruptedKeys) + len(staleIDs) + len(missingIDs) + len(staleTagMembers) + len(missingTagMembers)
	fmt.Printf("\nChecked %d record(s), found %d problem(s)\n", checkedCount, problems)
	if problems == 0 {
		fmt.Println("Indexes are consistent!")
		return
	}

	fmt.Print("\nDo you want to REPAIR these entries? (yes/no): ")
	var response string
	fmt.Scanln(&response)
	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	// Corrupted records are unrecoverable, drop them with their score keys.
	// Their index memberships are already flagged stale above.
	for _, key := range corruptedKeys {
		id := strings.TrimPrefix(key, recordPrefix)
		if err := client.Del(ctx, key, scoresPrefix+id).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
			continue
		}
		fmt.Printf("Deleted %s\n", key)
	}
	for _, id := range staleIDs {
		if err := client.SRem(ctx, allMonstersKey, id).Err(); err != nil {
			fmt.Printf("Failed to remove %s from id set: %v\n", id, err)
		}
	}
	for _, id := range missingIDs {
		if err := client.SAdd(ctx, allMonstersKey, id).Err(); err != nil {
			fmt.Printf("Failed to add %s to id set: %v\n", id, err)
		}
	}
	for indexKey, ids := range staleTagMembers {
		for _, id := range ids {
			if err := client.SRem(ctx, indexKey, id).Err(); err != nil {
				fmt.Printf("Failed to remove %s from %s: %v\n", id, indexKey, err)
			}
		}
	}
	for indexKey, ids := range missingTagMembers {
		for _, id := range ids {
			if err := client.SAdd(ctx, indexKey, id).Err(); err != nil {
				fmt.Printf("Failed to add %s to %s: %v\n", id, indexKey, err)
			}
		}
	}

	fmt.Println("\nRepair complete!")
}

func containsTag(tags []string, code string) bool {
	for _, t := range tags {
		if t == code {
			return true
		}
	}
	return false
}
