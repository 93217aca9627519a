package bookinglock

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLock сторож "бронирование в процессе" поверх Redis SETNX.
// Ключ — студент, значение — слот, который он сейчас бронирует.
// Это клиентская сериализация попыток, а не гарантия эксклюзивности:
// эксклюзивность слота обеспечивает атомарная процедура бэкенда
type RedisLock struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLock создает lock-менеджер и проверяет соединение с Redis
func NewRedisLock(addr string, ttl time.Duration) (*RedisLock, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: ping %s: %v", ErrUnavailable, addr, err)
	}

	return &RedisLock{client: client, ttl: ttl}, nil
}

// Acquire пытается пометить студента как "бронирует slotID".
// Возвращает false, если у студента уже есть бронирование в процессе
func (l *RedisLock) Acquire(ctx context.Context, studentID, slotID string) (bool, error) {
	ok, err := l.client.SetNX(ctx, lockKey(studentID), slotID, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%w: acquire for student=%s: %v", ErrUnavailable, studentID, err)
	}
	return ok, nil
}

// Release снимает отметку "бронирование в процессе" со студента
func (l *RedisLock) Release(ctx context.Context, studentID string) error {
	if err := l.client.Del(ctx, lockKey(studentID)).Err(); err != nil {
		return fmt.Errorf("%w: release for student=%s: %v", ErrUnavailable, studentID, err)
	}
	return nil
}

// Ping проверяет доступность Redis (для health-чека)
func (l *RedisLock) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

// Close закрывает соединение с Redis
func (l *RedisLock) Close() error {
	return l.client.Close()
}

func lockKey(studentID string) string {
	return fmt.Sprintf("booking:inflight:%s", studentID)
}
