package store

import "fmt"

// Info HASH fields.
const (
	infoFieldName      = "name"
	infoFieldURL       = "url"
	infoFieldCreatedAt = "created_at"
)

// ZSET of monitor ids, all scored 0 so members sort lexicographically.
func (s *RedisStore) keyMonitors() string {
	return fmt.Sprintf("%s:monitors", s.prefix)
}

// HASH
func (s *RedisStore) keyMonitorInfo(id string) string {
	return fmt.Sprintf("%s:monitor:%s:info", s.prefix, id)
}

// LIST of JSON checks, newest first.
func (s *RedisStore) keyMonitorChecks(id string) string {
	return fmt.Sprintf("%s:monitor:%s:checks", s.prefix, id)
}
