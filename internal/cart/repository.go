package cart

import "context"

type Repository interface {
	Append(ctx context.Context, item Item)
	RemoveAt(ctx context.Context, index int) error
	Items(ctx context.Context) []Item
	Len(ctx context.Context) int
	Clear(ctx context.Context)
}

// repository keeps the ordered cart lines in memory for the session.
type repository struct {
	items []Item
}

func NewRepository() Repository {
	return &repository{}
}

func (r *repository) Append(_ context.Context, item Item) {
	r.items = append(r.items, item)
}

// RemoveAt drops exactly one line, keeping the order of the rest.
// An out-of-range index leaves the cart untouched.
func (r *repository) RemoveAt(_ context.Context, index int) error {
	if index < 0 || index >= len(r.items) {
		return ErrIndexOutOfRange
	}
	r.items = append(r.items[:index], r.items[index+1:]...)
	return nil
}

func (r *repository) Items(_ context.Context) []Item {
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out
}

func (r *repository) Len(_ context.Context) int {
	return len(r.items)
}

func (r *repository) Clear(_ context.Context) {
	r.items = nil
}
