package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// UserSessionKey returns the cache key holding a user's active session JTI
func (r *CacheKeyStruct) UserSessionKey(userID int) string {
	return fmt.Sprintf("login:%d", userID)
}

// EnrollmentFeedChannel returns the Redis PubSub channel for enrollment events
func (r *CacheKeyStruct) EnrollmentFeedChannel() string {
	return "enrollments:feed"
}

var CacheKey = NewCacheKeyStruct()
