// Package storage provides the content-addressed private payload store.
// Production submissions go to Lighthouse (Filecoin-backed, permanent);
// local development can use any IPFS node through the Kubo HTTP API.
// Both backends address blobs by CID.
package storage

import (
	"context"
	"regexp"
	"strings"
)

const (
	// IpfsPrefix is the URI scheme prefix recognized for IPFS content.
	IpfsPrefix = "ipfs://"
	// FilecoinPrefix is the URI scheme prefix recognized for Filecoin/Lighthouse content.
	FilecoinPrefix = "filecoin://"
)

// Store is a backend able to persist JSON blobs and fetch them back by CID.
type Store interface {
	UploadJSON(ctx context.Context, data any) (string, error)
	ReadFile(ctx context.Context, id string) ([]byte, error)
}

// formatHash removes known URI scheme prefixes and any non-alphanumeric
// characters (except '=') from the supplied hash/URI to produce a clean CID
// string suitable for the underlying backends.
func formatHash(hash string) string {
	hash = strings.Replace(hash, IpfsPrefix, "", -1)
	hash = strings.Replace(hash, FilecoinPrefix, "", -1)
	hash = removeSpecialCharacters(hash)
	return hash
}

// removeSpecialCharacters strips all characters except ASCII letters, digits,
// and '=' from pString. Used to sanitize incoming CIDs/IDs.
func removeSpecialCharacters(pString string) string {
	reg := regexp.MustCompile("[^a-zA-Z0-9=]")
	return reg.ReplaceAllString(pString, "")
}
