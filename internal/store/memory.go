package store

import (
	"errors"
	"sort"
	"sync"

	"staydash/internal/model"
)

// ErrNotLoaded 数据集尚未加载
var ErrNotLoaded = errors.New("dataset not loaded")

// MemoryStore 内存数据存储
// 数据集在会话开始时加载一次，之后只读；RWMutex 仅保护加载时刻的可见性
type MemoryStore struct {
	dataset *model.Dataset
	mu      sync.RWMutex
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SetDataset 设置数据集（仅在启动时调用一次）
func (s *MemoryStore) SetDataset(ds *model.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = ds
}

// Loaded 是否已加载数据
func (s *MemoryStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset != nil && len(s.dataset.Listings) > 0
}

// Listings 获取全部房源记录
func (s *MemoryStore) Listings() []model.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dataset == nil {
		return nil
	}
	return s.dataset.Listings
}

// Meta 获取数据集元信息
func (s *MemoryStore) Meta() (model.DatasetMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dataset == nil {
		return model.DatasetMeta{}, ErrNotLoaded
	}
	return s.dataset.Meta, nil
}

// Count 获取记录数量
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dataset == nil {
		return 0
	}
	return len(s.dataset.Listings)
}

// Cities 获取去重排序后的城市列表（跳过缺失值）
func (s *MemoryStore) Cities() []string {
	return s.distinct(func(l model.Listing) string { return l.City })
}

// RoomTypes 获取去重排序后的房型列表（跳过缺失值）
func (s *MemoryStore) RoomTypes() []string {
	return s.distinct(func(l model.Listing) string { return l.RoomType })
}

func (s *MemoryStore) distinct(key func(model.Listing) string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dataset == nil {
		return nil
	}

	seen := make(map[string]struct{})
	for _, l := range s.dataset.Listings {
		k := key(l)
		if k == "" {
			continue
		}
		seen[k] = struct{}{}
	}

	result := make([]string, 0, len(seen))
	for k := range seen {
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}
