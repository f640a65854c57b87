package ports

import (
	"context"

	"github.com/bnema/boxtools-cli/internal/domain"
)

type ItemReader interface {
	// GetItem fetches metadata for ref. An empty ref.Type makes the client
	// probe each item kind in turn.
	GetItem(ctx context.Context, ref domain.ItemRef) (domain.Item, error)
	ListFolder(ctx context.Context, folderID domain.ItemID) (domain.Item, []domain.Item, error)
	Search(ctx context.Context, query SearchQuery) ([]domain.Item, error)
	// PathTo returns the ancestors of ref from the root down, followed by
	// the item itself.
	PathTo(ctx context.Context, ref domain.ItemRef) ([]domain.Item, error)
}

type ItemWriter interface {
	Move(ctx context.Context, ref domain.ItemRef, parentID domain.ItemID) (domain.Item, error)
	Copy(ctx context.Context, ref domain.ItemRef, parentID domain.ItemID, name string) (domain.Item, error)
	Rename(ctx context.Context, ref domain.ItemRef, name string) (domain.Item, error)
	Delete(ctx context.Context, ref domain.ItemRef, recursive bool) error
	CreateFolder(ctx context.Context, parentID domain.ItemID, name string) (domain.Item, error)
}

type StorageClient interface {
	ItemReader
	ItemWriter
	CurrentUser(ctx context.Context) (User, error)
}

type SearchQuery struct {
	Text  string
	Type  domain.ItemType
	Limit int
}

type User struct {
	ID         string
	Name       string
	Login      string
	SpaceUsed  int64
	SpaceTotal int64
}
