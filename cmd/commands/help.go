package commands

import "fmt"

const helpText = `rodut is an authenticated ingest gateway for posts and media.

usage:
  rodut run <config.yml>          start the HTTP gateway and the gRPC health server
  rodut hash-key <key> [salt]     print the API_KEY_HASH value for a key
  rodut version                   print the API version
  rodut help                      show this message
`

func HandleHelp(_ []string) {
	fmt.Print(helpText) //nolint
}
