package types

import (
	"fmt"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/teris-io/shortid"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex app_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

var (
	sidGenerator *shortid.Shortid
	once         sync.Once
)

func initializeSID() {
	var err error
	sidGenerator, err = shortid.New(1, shortid.DefaultABC, 2342)
	if err != nil {
		panic("failed to initialize shortid generator: " + err.Error())
	}
}

// GenerateShortIDWithPrefix returns a short human-readable reference with a
// prefix, capped at 12 characters, e.g. `BK-XY12A8Q`.
func GenerateShortIDWithPrefix(prefix string) string {
	once.Do(initializeSID)

	id, err := sidGenerator.Generate()
	if err != nil {
		return ""
	}
	id = strings.ReplaceAll(id, "-", "")

	availableLen := 12 - len(prefix)
	if availableLen <= 0 {
		return ""
	}

	if len(id) > availableLen {
		id = id[:availableLen]
	}

	return strings.ToUpper(fmt.Sprintf("%s%s", prefix, id))
}

const (
	// Prefixes for all entities persisted by the portal

	UUID_PREFIX_USER        = "user"
	UUID_PREFIX_POSITION    = "pos"
	UUID_PREFIX_APPLICATION = "app"
	UUID_PREFIX_RESUME      = "res"
	UUID_PREFIX_SUGGESTION  = "sugg"
	UUID_PREFIX_GRADE       = "grade"
	UUID_PREFIX_COOP        = "coop"
	UUID_PREFIX_DATABASE    = "db"
	UUID_PREFIX_ALERT       = "alert"
	UUID_PREFIX_BACKUP      = "backup"
	UUID_PREFIX_ALTERATION  = "alt"
)

const (
	SHORT_ID_PREFIX_BACKUP = "BK-"
)
