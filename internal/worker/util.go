package worker

import (
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

func asynqRedisOpt(redis *redis.Client) asynq.RedisClientOpt {
	opts := redis.Options()
	return asynq.RedisClientOpt{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}
}
