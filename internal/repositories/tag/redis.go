package tag

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
	tagKeyPrefix = "tag:"
	allTagsKey   = "tag:all"

	// Error messages
	errTagNil       = "tag cannot be nil"
	errTagCodeEmpty = "tag code cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis tag repository.
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

// NewRedis creates a new Redis-backed tag repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Tag == nil {
		return nil, errors.InvalidArgument(errTagNil)
	}
	if input.Tag.Code == "" {
		return nil, errors.InvalidArgument(errTagCodeEmpty)
	}

	key := tagKeyPrefix + input.Tag.Code

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}

	if exists > 0 {
		return nil, errors.AlreadyExistsf("tag with code %s already exists", input.Tag.Code)
	}

	data, err := json.Marshal(input.Tag)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal tag")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, allTagsKey, input.Tag.Code)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create tag")
	}

	return &CreateOutput{Tag: input.Tag}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Code == "" {
		return nil, errors.InvalidArgument(errTagCodeEmpty)
	}

	result, err := r.client.Get(ctx, tagKeyPrefix+input.Code).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("tag with code %s not found", input.Code)
		}
		return nil, errors.Wrapf(err, "failed to get tag")
	}

	var t entities.Tag
	if err := json.Unmarshal([]byte(result), &t); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal tag")
	}

	return &GetOutput{Tag: &t}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	codes, err := r.client.SMembers(ctx, allTagsKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get tag codes")
	}

	if len(codes) == 0 {
		return &ListOutput{Tags: []*entities.Tag{}}, nil
	}

	sort.Strings(codes)

	keys := make([]string, len(codes))
	for i, code := range codes {
		keys[i] = tagKeyPrefix + code
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get tags")
	}

	tags := make([]*entities.Tag, 0, len(values))
	for i, value := range values {
		if value == nil {
			r.client.SRem(ctx, allTagsKey, codes[i])
			continue
		}

		raw, ok := value.(string)
		if !ok {
			return nil, errors.Internalf("unexpected value type %T for tag %s", value, codes[i])
		}

		var t entities.Tag
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal tag %s", codes[i])
		}
		tags = append(tags, &t)
	}

	return &ListOutput{Tags: tags}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Code == "" {
		return nil, errors.InvalidArgument(errTagCodeEmpty)
	}

	key := tagKeyPrefix + input.Code

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("tag with code %s not found", input.Code)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, allTagsKey, input.Code)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete tag")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) Seed(ctx context.Context, input SeedInput) (*SeedOutput, error) {
	if len(input.Tags) == 0 {
		return &SeedOutput{Seeded: 0}, nil
	}

	pipe := r.client.TxPipeline()
	seeded := 0
	for _, t := range input.Tags {
		if t == nil || t.Code == "" {
			return nil, errors.InvalidArgument("seed tags must have codes")
		}
		data, err := json.Marshal(t)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal tag %s", t.Code)
		}
		pipe.Set(ctx, tagKeyPrefix+t.Code, data, 0)
		pipe.SAdd(ctx, allTagsKey, t.Code)
		seeded++
	}

	_, err := pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to seed tags")
	}

	return &SeedOutput{Seeded: seeded}, nil
}
