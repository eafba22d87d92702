package redis

import (
	"context"

	"github.com/redis/rueidis"

	"github.com/gem5-vision/catalogd/internal/db"
)

// JSONGet retrieves a JSON document by key and optional paths.
func (s *Store) JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error) {
	args := make([]string, len(paths))
	copy(args, paths)

	cmd := s.b().Arbitrary("JSON.GET").Keys(key).Args(args...).Build()
	raw, err := s.do(ctx, cmd).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, db.ErrKeyNotFound
		}
		return nil, &db.Error{Op: db.OpJSONGet, Err: err}
	}
	if raw == "" {
		return nil, db.ErrKeyNotFound
	}
	return []byte(raw), nil
}

// JSONGetMulti retrieves multiple JSON documents in one pipelined round trip.
// Missing keys yield nil slots so callers can correlate results with input keys.
func (s *Store) JSONGetMulti(ctx context.Context, keys []string) ([][]byte, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	cmds := make(rueidis.Commands, 0, len(keys))
	for _, key := range keys {
		cmds = append(cmds, s.b().Arbitrary("JSON.GET").Keys(key).Build())
	}

	results := s.client.DoMulti(ctx, cmds...)

	docs := make([][]byte, len(keys))
	for i, res := range results {
		raw, err := res.ToString()
		if err != nil {
			if rueidis.IsRedisNil(err) {
				continue
			}
			return nil, &db.Error{Op: db.OpJSONGet, Err: err}
		}
		if raw == "" {
			continue
		}
		docs[i] = []byte(raw)
	}
	return docs, nil
}
