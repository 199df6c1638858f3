package collection

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/errors"
	redisclient "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/redis"
)

const (
	collectionKeyPrefix = "collection:"
	allCollectionsKey   = "collection:all"

	// Error messages
	errCollectionNil     = "collection cannot be nil"
	errCollectionIDEmpty = "collection ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis collection repository.
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

// NewRedis creates a new Redis-backed collection repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Collection == nil {
		return nil, errors.InvalidArgument(errCollectionNil)
	}
	if input.Collection.ID == "" {
		return nil, errors.InvalidArgument(errCollectionIDEmpty)
	}

	key := collectionKeyPrefix + input.Collection.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}

	if exists > 0 {
		return nil, errors.AlreadyExistsf("collection with ID %s already exists", input.Collection.ID)
	}

	data, err := json.Marshal(input.Collection)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal collection")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, allCollectionsKey, input.Collection.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create collection")
	}

	return &CreateOutput{Collection: input.Collection}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCollectionIDEmpty)
	}

	result, err := r.client.Get(ctx, collectionKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("collection with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get collection")
	}

	var col entities.Collection
	if err := json.Unmarshal([]byte(result), &col); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal collection")
	}

	return &GetOutput{Collection: &col}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, allCollectionsKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get collection IDs")
	}

	if len(ids) == 0 {
		return &ListOutput{Collections: []*entities.Collection{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = collectionKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get collections")
	}

	collections := make([]*entities.Collection, 0, len(values))
	for i, value := range values {
		if value == nil {
			r.client.SRem(ctx, allCollectionsKey, ids[i])
			continue
		}

		raw, ok := value.(string)
		if !ok {
			return nil, errors.Internalf("unexpected value type %T for collection %s", value, ids[i])
		}

		var col entities.Collection
		if err := json.Unmarshal([]byte(raw), &col); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal collection %s", ids[i])
		}
		collections = append(collections, &col)
	}

	sort.Slice(collections, func(i, j int) bool {
		if collections[i].Name != collections[j].Name {
			return collections[i].Name < collections[j].Name
		}
		return collections[i].ID < collections[j].ID
	})

	return &ListOutput{Collections: collections}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCollectionIDEmpty)
	}

	key := collectionKeyPrefix + input.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("collection with ID %s not found", input.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, allCollectionsKey, input.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete collection")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) SetMembers(ctx context.Context, input SetMembersInput) (*SetMembersOutput, error) {
	if input.CollectionID == "" {
		return nil, errors.InvalidArgument(errCollectionIDEmpty)
	}

	key := collectionKeyPrefix + input.CollectionID

	var out *SetMembersOutput
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		result, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFoundf("collection with ID %s not found", input.CollectionID)
			}
			return errors.Wrapf(err, "failed to get collection")
		}

		var existing entities.Collection
		if err := json.Unmarshal([]byte(result), &existing); err != nil {
			return errors.Wrapf(err, "failed to unmarshal collection")
		}

		if existing.UpdatedAt != input.ExpectedUpdatedAt {
			return errors.Abortedf("collection %s was modified concurrently", input.CollectionID)
		}

		updated := existing
		updated.MonsterIDs = input.MonsterIDs
		updated.UpdatedAt = input.UpdatedAt

		data, err := json.Marshal(&updated)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal collection")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		if err != nil {
			return err
		}

		out = &SetMembersOutput{Collection: &updated}
		return nil
	}, key)

	if err != nil {
		if err == redis.TxFailedErr {
			return nil, errors.Abortedf("collection %s was modified concurrently", input.CollectionID)
		}
		var coded *errors.Error
		if errors.As(err, &coded) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to set members of collection %s", input.CollectionID)
	}

	return out, nil
}
