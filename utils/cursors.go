package utils

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/goccy/go-json"
	"github.com/xxtea/xxtea-go/xxtea"
)

// EncryptCursor encrypts the cursor
func EncryptCursor(input []any, key string) (string, error) {
	// Serialize the input to JSON
	jsonData, err := json.Marshal(input)
	if err != nil {
		return "", err
	}

	// Encrypt the JSON data using the XXTEA algorithm
	encryptedBytes := xxtea.Encrypt(jsonData, []byte(key))

	// Encode the encrypted bytes to a base58 string
	return base58.Encode(encryptedBytes), nil
}

// DecryptCursor decrypts the cursor
func DecryptCursor(input string, key string) ([]any, error) {
	decoded := base58.Decode(input)
	if len(decoded) == 0 {
		return nil, fmt.Errorf("cursor is not valid base58")
	}

	decryptedBytes := xxtea.Decrypt(decoded, []byte(key))
	if decryptedBytes == nil {
		return nil, fmt.Errorf("cursor could not be decrypted")
	}

	var arr []any
	if err := json.Unmarshal(decryptedBytes, &arr); err != nil {
		return nil, err
	}

	return arr, nil
}

// CursorInt64 reads the first cursor element as an integer id
func CursorInt64(cursor []any) (int64, error) {
	if len(cursor) == 0 {
		return 0, fmt.Errorf("empty cursor")
	}

	switch v := cursor[0].(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case json.Number:
		return v.Int64()
	default:
		return 0, fmt.Errorf("unexpected cursor value %v", v)
	}
}
