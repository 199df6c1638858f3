package monster

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/errors"
	redisclient "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/redis"
)

const (
	monsterKeyPrefix = "monster:"
	scoresKeyPrefix  = "monster:scores:"
	allMonstersKey   = "monster:all"
	tagIndexPrefix   = "monster:tag:"

	// Error messages
	errMonsterNil     = "monster cannot be nil"
	errMonsterIDEmpty = "monster ID cannot be empty"
	errTagCodeEmpty   = "tag code cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis monster repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed monster repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Monster == nil {
		return nil, errors.InvalidArgument(errMonsterNil)
	}
	if input.Monster.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	key := monsterKeyPrefix + input.Monster.ID

	// Check if already exists
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}

	if exists > 0 {
		return nil, errors.AlreadyExistsf("monster with ID %s already exists", input.Monster.ID)
	}

	data, err := json.Marshal(input.Monster)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal monster")
	}

	// Record plus index entries in one transaction
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, allMonstersKey, input.Monster.ID)
	for _, code := range input.Monster.Tags {
		pipe.SAdd(ctx, tagIndexPrefix+code, input.Monster.ID)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create monster")
	}

	return &CreateOutput{Monster: input.Monster}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	key := monsterKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("monster with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get monster")
	}

	var mon entities.Monster
	if err := json.Unmarshal([]byte(result), &mon); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal monster")
	}

	scores, err := r.getScores(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Monster: &mon, Scores: scores}, nil
}

// getScores returns nil when no derivation has been committed for the ID.
func (r *redisRepository) getScores(ctx context.Context, id string) (*entities.DerivedScores, error) {
	result, err := r.client.Get(ctx, scoresKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to get scores for monster %s", id)
	}

	var scores entities.DerivedScores
	if err := json.Unmarshal([]byte(result), &scores); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal scores for monster %s", id)
	}

	return &scores, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Monster == nil {
		return nil, errors.InvalidArgument(errMonsterNil)
	}
	if input.Monster.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	key := monsterKeyPrefix + input.Monster.ID

	// Get existing record to diff the tag indexes
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("monster with ID %s not found", input.Monster.ID)
		}
		return nil, errors.Wrapf(err, "failed to get monster")
	}

	var existing entities.Monster
	if err := json.Unmarshal([]byte(result), &existing); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal existing monster")
	}

	data, err := json.Marshal(input.Monster)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal monster")
	}

	added, removed := tagDiff(existing.Tags, input.Monster.Tags)

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	for _, code := range removed {
		pipe.SRem(ctx, tagIndexPrefix+code, input.Monster.ID)
	}
	for _, code := range added {
		pipe.SAdd(ctx, tagIndexPrefix+code, input.Monster.ID)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update monster")
	}

	return &UpdateOutput{Monster: input.Monster}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	// Get monster to find its index entries
	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}
	mon := getOutput.Monster

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, monsterKeyPrefix+input.ID)
	pipe.Del(ctx, scoresKeyPrefix+input.ID)
	pipe.SRem(ctx, allMonstersKey, input.ID)
	for _, code := range mon.Tags {
		pipe.SRem(ctx, tagIndexPrefix+code, input.ID)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete monster")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	monsters, err := r.listByIndex(ctx, allMonstersKey)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Monsters: monsters}, nil
}

func (r *redisRepository) ListByTag(ctx context.Context, input ListByTagInput) (*ListByTagOutput, error) {
	if input.TagCode == "" {
		return nil, errors.InvalidArgument(errTagCodeEmpty)
	}

	monsters, err := r.listByIndex(ctx, tagIndexPrefix+input.TagCode)
	if err != nil {
		return nil, err
	}
	return &ListByTagOutput{Monsters: monsters}, nil
}

func (r *redisRepository) ListIDs(ctx context.Context, input ListIDsInput) (*ListIDsOutput, error) {
	ids, err := r.client.SMembers(ctx, allMonstersKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster IDs")
	}
	sort.Strings(ids)
	return &ListIDsOutput{IDs: ids}, nil
}

// listByIndex is a helper function to list monsters by any index
func (r *redisRepository) listByIndex(ctx context.Context, indexKey string) ([]*entities.Monster, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monsters from index %s", indexKey)
	}

	slog.DebugContext(ctx, "found monster IDs in index",
		"index_key", indexKey,
		"count", len(ids))

	if len(ids) == 0 {
		return []*entities.Monster{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = monsterKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monsters from index %s", indexKey)
	}

	monsters := make([]*entities.Monster, 0, len(values))
	for i, value := range values {
		if value == nil {
			// Record is gone but the index still points at it
			slog.WarnContext(ctx, "monster not found, cleaning up index",
				"monster_id", ids[i],
				"index_key", indexKey)
			r.client.SRem(ctx, indexKey, ids[i])
			continue
		}

		raw, ok := value.(string)
		if !ok {
			return nil, errors.Internalf("unexpected value type %T for monster %s", value, ids[i])
		}

		var mon entities.Monster
		if err := json.Unmarshal([]byte(raw), &mon); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal monster %s", ids[i])
		}
		monsters = append(monsters, &mon)
	}

	sort.Slice(monsters, func(i, j int) bool {
		if monsters[i].Name != monsters[j].Name {
			return monsters[i].Name < monsters[j].Name
		}
		return monsters[i].ID < monsters[j].ID
	})

	return monsters, nil
}

func (r *redisRepository) Reconcile(ctx context.Context, input ReconcileInput) (*ReconcileOutput, error) {
	if input.MonsterID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}
	if input.ScoresChanged && input.Scores == nil {
		return nil, errors.InvalidArgument("scores cannot be nil when marked changed")
	}

	key := monsterKeyPrefix + input.MonsterID

	var out *ReconcileOutput
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		result, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFoundf("monster with ID %s not found", input.MonsterID)
			}
			return errors.Wrapf(err, "failed to get monster")
		}

		var existing entities.Monster
		if err := json.Unmarshal([]byte(result), &existing); err != nil {
			return errors.Wrapf(err, "failed to unmarshal monster")
		}

		// The snapshot the derivation ran on must still be current
		if existing.UpdatedAt != input.ExpectedUpdatedAt {
			return errors.Abortedf("monster %s was modified during the derivation pass", input.MonsterID)
		}

		if !input.RoleChanged && !input.TagsChanged && !input.ScoresChanged {
			out = &ReconcileOutput{Monster: &existing, Written: false}
			return nil
		}

		recordChanged := input.RoleChanged || input.TagsChanged

		updated := existing
		if input.RoleChanged {
			updated.Role = input.Role
		}
		if input.TagsChanged {
			updated.Tags = input.Tags
		}
		if recordChanged {
			updated.UpdatedAt = input.UpdatedAt
		}

		var data []byte
		if recordChanged {
			data, err = json.Marshal(&updated)
			if err != nil {
				return errors.Wrapf(err, "failed to marshal monster")
			}
		}

		var scoresData []byte
		if input.ScoresChanged {
			scoresData, err = json.Marshal(input.Scores)
			if err != nil {
				return errors.Wrapf(err, "failed to marshal scores")
			}
		}

		added, removed := tagDiff(existing.Tags, updated.Tags)

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if recordChanged {
				pipe.Set(ctx, key, data, 0)
			}
			for _, code := range removed {
				pipe.SRem(ctx, tagIndexPrefix+code, input.MonsterID)
			}
			for _, code := range added {
				pipe.SAdd(ctx, tagIndexPrefix+code, input.MonsterID)
			}
			if input.ScoresChanged {
				pipe.Set(ctx, scoresKeyPrefix+input.MonsterID, scoresData, 0)
			}
			return nil
		})
		if err != nil {
			return err
		}

		out = &ReconcileOutput{Monster: &updated, Scores: input.Scores, Written: true}
		return nil
	}, key)

	if err != nil {
		if err == redis.TxFailedErr {
			return nil, errors.Abortedf("monster %s was modified during the derivation pass", input.MonsterID)
		}
		var coded *errors.Error
		if errors.As(err, &coded) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to reconcile monster %s", input.MonsterID)
	}

	return out, nil
}

// tagDiff reports which codes appear only in after (added) and only in
// before (removed). Both result slices are sorted.
func tagDiff(before, after []string) (added, removed []string) {
	beforeSet := make(map[string]struct{}, len(before))
	for _, code := range before {
		beforeSet[code] = struct{}{}
	}
	afterSet := make(map[string]struct{}, len(after))
	for _, code := range after {
		afterSet[code] = struct{}{}
	}

	for code := range afterSet {
		if _, ok := beforeSet[code]; !ok {
			added = append(added, code)
		}
	}
	for code := range beforeSet {
		if _, ok := afterSet[code]; !ok {
			removed = append(removed, code)
		}
	}

	sort.Strings(added)
	sort.Strings(removed)
	return added, removed
}
