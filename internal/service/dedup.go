package service

import (
	"context"
	"fmt"
)

// Partition splits canonical links into those already stored and those that
// are new. Both keep the order the links were given in.
type Partition struct {
	Existing []string
	New      []string
}

type DedupResolver struct {
	store Store
}

func NewDedupResolver(store Store) *DedupResolver {
	return &DedupResolver{store: store}
}

// Resolve issues a single lookup for all links. Every input link ends up in
// exactly one side of the partition. links must not contain duplicates.
func (r *DedupResolver) Resolve(ctx context.Context, links []string) (Partition, error) {
	if len(links) == 0 {
		return Partition{}, nil
	}

	stored, err := r.store.FindExistingLinks(ctx, links)
	if err != nil {
		return Partition{}, fmt.Errorf("failed to find existing links: %w", err)
	}

	known := make(map[string]struct{}, len(stored))
	for _, link := range stored {
		known[link] = struct{}{}
	}

	p := Partition{New: make([]string, 0, len(links)-min(len(known), len(links)))}
	for _, link := range links {
		if _, ok := known[link]; ok {
			p.Existing = append(p.Existing, link)
			continue
		}
		p.New = append(p.New, link)
	}
	return p, nil
}
