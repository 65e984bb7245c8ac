package users

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/tutorbook/internal/filex"
)

// FileRepository stores one user per line as "email,password". The password
// may itself contain commas, so a record is split at the first comma only.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// LoadAll reads every record. A missing file is an empty repository; lines
// without a comma are skipped.
func (r *FileRepository) LoadAll(ctx context.Context) ([]User, error) {
	lines, err := filex.ReadLines(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []User{}, nil
		}
		return nil, fmt.Errorf("error loading users: %w", err)
	}

	users := make([]User, 0, len(lines))
	for _, line := range lines {
		email, password, ok := strings.Cut(line, ",")
		if !ok {
			continue
		}
		users = append(users, User{Email: email, Password: password})
	}

	return users, nil
}

func (r *FileRepository) Append(ctx context.Context, user User) error {
	if err := filex.AppendLine(r.path, user.Email+","+user.Password); err != nil {
		return fmt.Errorf("error saving user: %w", err)
	}
	return nil
}
