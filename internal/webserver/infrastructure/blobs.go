package infrastructure

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/spf13/afero"
)

// ErrInvalidBlobToken is returned when a presigned URL token is malformed,
// tampered with or past its expiry
var ErrInvalidBlobToken = errors.New("invalid or expired blob token")

// BlobStore issues time-limited, pre-authorized read URLs for stored objects
// and resolves those URLs back to the objects they grant access to
type BlobStore struct {
	fs      afero.Fs
	secret  []byte
	baseURL string
	expiry  time.Duration
}

type blobClaims struct {
	Key        string `json:"key"`
	Attachment string `json:"attachment,omitempty"`
	jwt.RegisteredClaims
}

func NewBlobStore(fs afero.Fs, secret []byte, baseURL string, expiry time.Duration) *BlobStore {
	return &BlobStore{
		fs:      fs,
		secret:  secret,
		baseURL: baseURL,
		expiry:  expiry,
	}
}

// SignedURL returns a URL granting read access to the object under key until
// the store's expiry elapses. A non-empty attachmentName makes retrievals
// serve the object as a download under that name.
func (b *BlobStore) SignedURL(key, attachmentName string) (string, error) {
	claims := blobClaims{
		Key:        key,
		Attachment: attachmentName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(b.expiry)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(b.secret)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/blobs/%s", b.baseURL, signed), nil
}

// Open verifies a signed token and returns the object it points at, along
// with the attachment name requested at signing time, if any
func (b *BlobStore) Open(token string) (afero.File, string, error) {
	claims := blobClaims{}

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return b.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, "", ErrInvalidBlobToken
	}

	file, err := b.fs.Open(claims.Key)
	if err != nil {
		return nil, "", err
	}
	return file, claims.Attachment, nil
}
