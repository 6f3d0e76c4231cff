package contacts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("empty path is permission denied", func(t *testing.T) {
		p := NewFileProvider("")
		if _, err := p.ListContacts(ctx); !errors.Is(err, ErrPermissionDenied) {
			t.Errorf("err = %v, want ErrPermissionDenied", err)
		}
	})

	t.Run("missing file is permission denied", func(t *testing.T) {
		p := NewFileProvider(filepath.Join(t.TempDir(), "nope.json"))
		if _, err := p.ListContacts(ctx); !errors.Is(err, ErrPermissionDenied) {
			t.Errorf("err = %v, want ErrPermissionDenied", err)
		}
	})

	t.Run("valid file lists contacts", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "contacts.json")
		data := `[{"name":"Alice","phoneNumbers":["+15550001"]},{"name":"Bob"}]`
		if err := os.WriteFile(path, []byte(data), 0600); err != nil {
			t.Fatalf("write fixture: %v", err)
		}

		p := NewFileProvider(path)
		list, err := p.ListContacts(ctx)
		if err != nil {
			t.Fatalf("ListContacts failed: %v", err)
		}
		if len(list) != 2 || list[0].Name != "Alice" || len(list[0].PhoneNumbers) != 1 {
			t.Errorf("contacts = %+v", list)
		}
	})

	t.Run("malformed file is an error but not permission denied", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "contacts.json")
		if err := os.WriteFile(path, []byte("{broken"), 0600); err != nil {
			t.Fatalf("write fixture: %v", err)
		}

		p := NewFileProvider(path)
		_, err := p.ListContacts(ctx)
		if err == nil || errors.Is(err, ErrPermissionDenied) {
			t.Errorf("err = %v, want decode error", err)
		}
	})
}
