package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/bnema/boxtools-cli/internal/ports"
	"github.com/bnema/boxtools-cli/internal/state"
	"go.uber.org/zap"
)

// Service runs remote operations and feeds every item it sees into the
// session history.
type Service struct {
	client  ports.StorageClient
	session *state.Session
	logger  *zap.Logger
}

// TreeEntry is one item of a folder walk. The root has depth 0.
type TreeEntry struct {
	Item  domain.Item
	Depth int
}

func NewService(client ports.StorageClient, session *state.Session, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		client:  client,
		session: session,
		logger:  logger,
	}
}

// Ref returns the reference for id, with the item type filled in when the
// history knows it.
func (s *Service) Ref(id domain.ItemID) domain.ItemRef {
	if id == domain.RootFolderID {
		return domain.ItemRef{ID: id, Type: domain.ItemTypeFolder}
	}
	if item, ok := s.session.History().Get(id); ok {
		return item.Ref()
	}
	return domain.ItemRef{ID: id}
}

func (s *Service) List(ctx context.Context, folderID domain.ItemID) (domain.Item, []domain.Item, error) {
	if err := s.requireFolder(folderID); err != nil {
		return domain.Item{}, nil, err
	}

	folder, entries, err := s.client.ListFolder(ctx, folderID)
	if err != nil {
		return domain.Item{}, nil, fmt.Errorf("list folder %s: %w", folderID, err)
	}

	s.session.Observe(folder)
	s.session.Observe(entries...)
	s.session.ListedFolder(folder)

	return folder, entries, nil
}

func (s *Service) Search(ctx context.Context, query ports.SearchQuery) ([]domain.Item, error) {
	items, err := s.client.Search(ctx, query)
	s.session.Observe(items...)
	if err != nil {
		return items, fmt.Errorf("search: %w", err)
	}
	return items, nil
}

func (s *Service) Stat(ctx context.Context, id domain.ItemID) (domain.Item, error) {
	item, err := s.client.GetItem(ctx, s.Ref(id))
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			s.session.Forget(id)
		}
		return domain.Item{}, fmt.Errorf("stat %s: %w", id, err)
	}

	s.session.Observe(item)
	return item, nil
}

// Path returns the ancestors of id from the root down, followed by the item.
func (s *Service) Path(ctx context.Context, id domain.ItemID) ([]domain.Item, error) {
	path, err := s.client.PathTo(ctx, s.Ref(id))
	if err != nil {
		return nil, fmt.Errorf("path of %s: %w", id, err)
	}

	s.session.Observe(path...)
	return path, nil
}

func (s *Service) Move(ctx context.Context, id, destID domain.ItemID) (domain.Item, error) {
	if err := s.requireFolder(destID); err != nil {
		return domain.Item{}, err
	}

	item, err := s.client.Move(ctx, s.Ref(id), destID)
	if err != nil {
		return domain.Item{}, fmt.Errorf("move %s to %s: %w", id, destID, err)
	}

	s.session.Observe(item)
	return item, nil
}

func (s *Service) Copy(ctx context.Context, id, destID domain.ItemID, name string) (domain.Item, error) {
	if err := s.requireFolder(destID); err != nil {
		return domain.Item{}, err
	}

	item, err := s.client.Copy(ctx, s.Ref(id), destID, name)
	if err != nil {
		return domain.Item{}, fmt.Errorf("copy %s to %s: %w", id, destID, err)
	}

	s.session.Observe(item)
	return item, nil
}

func (s *Service) Rename(ctx context.Context, id domain.ItemID, name string) (domain.Item, error) {
	if name == "" {
		return domain.Item{}, errors.New("new name is empty")
	}

	item, err := s.client.Rename(ctx, s.Ref(id), name)
	if err != nil {
		return domain.Item{}, fmt.Errorf("rename %s: %w", id, err)
	}

	s.session.Observe(item)
	return item, nil
}

// Remove deletes the item remotely and drops it from the history.
func (s *Service) Remove(ctx context.Context, id domain.ItemID, recursive bool) error {
	if id == domain.RootFolderID {
		return errors.New("refusing to delete the root folder")
	}

	if err := s.client.Delete(ctx, s.Ref(id), recursive); err != nil {
		return fmt.Errorf("remove %s: %w", id, err)
	}

	s.session.Forget(id)
	return nil
}

func (s *Service) MakeFolder(ctx context.Context, parentID domain.ItemID, name string) (domain.Item, error) {
	if name == "" {
		return domain.Item{}, errors.New("folder name is empty")
	}
	if err := s.requireFolder(parentID); err != nil {
		return domain.Item{}, err
	}

	folder, err := s.client.CreateFolder(ctx, parentID, name)
	if err != nil {
		return domain.Item{}, fmt.Errorf("create folder %q: %w", name, err)
	}

	s.session.Observe(folder)
	return folder, nil
}

// Tree walks the folder depth first, up to maxDepth levels below it (no
// limit when maxDepth <= 0). When ctx is cancelled mid-walk the entries
// collected so far are returned together with the context error. Walked
// folders feed the history but are not recorded as listed folders.
func (s *Service) Tree(ctx context.Context, rootID domain.ItemID, maxDepth int) ([]TreeEntry, error) {
	if err := s.requireFolder(rootID); err != nil {
		return nil, err
	}

	root, children, err := s.client.ListFolder(ctx, rootID)
	if err != nil {
		return nil, fmt.Errorf("list folder %s: %w", rootID, err)
	}
	s.session.Observe(root)
	s.session.Observe(children...)

	entries := []TreeEntry{{Item: root}}
	err = s.walk(ctx, children, 1, maxDepth, &entries)
	if err != nil {
		s.logger.Debug("tree walk stopped", zap.String("root", string(rootID)), zap.Int("entries", len(entries)), zap.Error(err))
	}
	return entries, err
}

func (s *Service) walk(ctx context.Context, items []domain.Item, depth, maxDepth int, entries *[]TreeEntry) error {
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}

		*entries = append(*entries, TreeEntry{Item: item, Depth: depth})
		if !item.IsFolder() || (maxDepth > 0 && depth >= maxDepth) {
			continue
		}

		_, children, err := s.client.ListFolder(ctx, item.ID)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return fmt.Errorf("list folder %s: %w", item.ID, err)
		}
		s.session.Observe(children...)

		if err := s.walk(ctx, children, depth+1, maxDepth, entries); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) UserInfo(ctx context.Context) (ports.User, error) {
	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		return ports.User{}, fmt.Errorf("get user info: %w", err)
	}
	return user, nil
}

// requireFolder rejects destinations the history knows are not folders.
func (s *Service) requireFolder(id domain.ItemID) error {
	if item, ok := s.session.History().Get(id); ok && !item.IsFolder() {
		return fmt.Errorf("%s (%s): %w", item.Name, id, domain.ErrNotFolder)
	}
	return nil
}
