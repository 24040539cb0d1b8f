package tvshows

import (
	"context"
	"sync"

	"github.com/jellytv/jellytv/jellyfin"
)

type staticUser string

func (u staticUser) UserID() string {
	return string(u)
}

// fakeAPI answers from canned results. Hooks run before answering and may block.
type fakeAPI struct {
	mu sync.Mutex

	seasons    *jellyfin.BaseItemDtoQueryResult
	seasonsErr error
	episodes   map[string][]jellyfin.BaseItemDto
	episodeErr map[string]error
	beforeItem map[string]func(ctx context.Context)

	seasonCalls []string
	itemCalls   []jellyfin.ItemsQuery
	itemCtxErrs []error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		episodes:   make(map[string][]jellyfin.BaseItemDto),
		episodeErr: make(map[string]error),
		beforeItem: make(map[string]func(ctx context.Context)),
	}
}

func (f *fakeAPI) GetSeasons(_ context.Context, userID, seriesID string) (*jellyfin.BaseItemDtoQueryResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seasonCalls = append(f.seasonCalls, userID+"/"+seriesID)
	if f.seasonsErr != nil {
		return nil, f.seasonsErr
	}
	return f.seasons, nil
}

func (f *fakeAPI) GetItems(ctx context.Context, q jellyfin.ItemsQuery) (*jellyfin.BaseItemDtoQueryResult, error) {
	f.mu.Lock()
	f.itemCalls = append(f.itemCalls, q)
	f.itemCtxErrs = append(f.itemCtxErrs, ctx.Err())
	hook := f.beforeItem[q.ParentID]
	f.mu.Unlock()

	if hook != nil {
		hook(ctx)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.episodeErr[q.ParentID]; err != nil {
		return nil, err
	}
	return &jellyfin.BaseItemDtoQueryResult{Items: f.episodes[q.ParentID]}, nil
}

func (f *fakeAPI) parentIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, 0, len(f.itemCalls))
	for _, q := range f.itemCalls {
		ids = append(ids, q.ParentID)
	}
	return ids
}

type emptyMessageError struct{}

func (emptyMessageError) Error() string { return "" }

func ids(items []jellyfin.BaseItemDto) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Id
	}
	return out
}

func groupIDs(groups [][]jellyfin.BaseItemDto) [][]string {
	out := make([][]string, len(groups))
	for i, g := range groups {
		out[i] = ids(g)
	}
	return out
}
