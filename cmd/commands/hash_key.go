package commands

import (
	"errors"
	"fmt"

	"rodut/internal/application/guard"
)

// HandleHashKey prints the digest an operator stores in API_KEY_HASH.
func HandleHashKey(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("hash-key expects <key> [salt]\nuse help command for more information"))
	}

	salt := ""
	if len(args) > 3 {
		salt = args[3]
	}

	fmt.Println(guard.HexDigest(args[2], salt)) //nolint
}
