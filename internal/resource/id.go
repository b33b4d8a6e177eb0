package resource

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/google/uuid"
)

// ID uniquely identifies an entity shown in the TUI, e.g. a screen under a
// tab.
type ID struct {
	id uuid.UUID
	// Kind of entity, e.g. screen, page, etc.
	kind Kind
}

func NewID(k Kind) ID {
	return ID{
		id:   uuid.New(),
		kind: k,
	}
}

func (id ID) Kind() Kind { return id.kind }

func (id ID) String() string {
	return fmt.Sprintf("%s-%s", id.kind.String(), base58.Encode(id.id[:]))
}

func (id ID) LogValue() slog.Value {
	return slog.StringValue(id.String())
}

func IDFromString(s string) (ID, error) {
	encKind, encID, found := strings.Cut(s, "-")
	if !found {
		return ID{}, fmt.Errorf("invalid identifier: %s", s)
	}

	// decode kind
	kind, err := kindString(encKind)
	if err != nil {
		return ID{}, fmt.Errorf("decoding identifier: %w", err)
	}

	// decode id
	id, err := uuid.FromBytes(base58.Decode(encID))
	if err != nil {
		return ID{}, fmt.Errorf("decoding identifier: %w", err)
	}

	return ID{id: id, kind: kind}, nil
}

func kindString(s string) (Kind, error) {
	for _, k := range []Kind{Screen, Page} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown kind: %s", s)
}
