package store

import "github.com/bluele/gcache"

// CachedStore is a read-through LRU in front of another Store. Mutations
// go to the inner store first and then drop the cached entry, so a cached
// value is never newer than the backing medium.
type CachedStore struct {
	inner Store
	cache gcache.Cache
}

func NewCachedStore(inner Store, size int) *CachedStore {
	return &CachedStore{
		inner: inner,
		cache: gcache.New(size).LRU().Build(),
	}
}

func (s *CachedStore) Put(key string, value []byte) error {
	if err := s.inner.Put(key, value); err != nil {
		return err
	}
	s.cache.Remove(key)
	return nil
}

func (s *CachedStore) Get(key string) ([]byte, error) {
	if v, err := s.cache.Get(key); err == nil {
		cached := v.([]byte)
		out := make([]byte, len(cached))
		copy(out, cached)
		return out, nil
	}
	v, err := s.inner.Get(key)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, len(v))
	copy(buf, v)
	_ = s.cache.Set(key, buf)
	return v, nil
}

func (s *CachedStore) Del(key string) error {
	if err := s.inner.Del(key); err != nil {
		return err
	}
	s.cache.Remove(key)
	return nil
}

func (s *CachedStore) Close() error {
	s.cache.Purge()
	return s.inner.Close()
}
