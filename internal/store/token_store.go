// filepath: internal/store/token_store.go
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// StoreRefreshToken saves the hash of a refresh token.
func (s *Store) StoreRefreshToken(subject, tokenHash string, expiry time.Time) error {
	query := "INSERT INTO refresh_tokens (token_hash, subject, expiry) VALUES (?, ?, ?)"
	_, err := s.DB.Exec(query, tokenHash, subject, expiry)
	return err
}

// ValidateRefreshToken checks that a token hash exists and is not
// expired, returning the subject it was issued to.
func (s *Store) ValidateRefreshToken(tokenHash string) (string, error) {
	query := "SELECT subject FROM refresh_tokens WHERE token_hash = ? AND expiry > ?"
	var subject string
	err := s.DB.QueryRow(query, tokenHash, time.Now()).Scan(&subject)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("token not found or expired")
		}
		return "", err
	}
	return subject, nil
}

// DeleteRefreshToken removes a specific refresh token hash.
func (s *Store) DeleteRefreshToken(tokenHash string) error {
	query := "DELETE FROM refresh_tokens WHERE token_hash = ?"
	_, err := s.DB.Exec(query, tokenHash)
	return err
}

// DeleteAllRefreshTokensForSubject revokes every session issued to a
// subject.
func (s *Store) DeleteAllRefreshTokensForSubject(subject string) error {
	query := "DELETE FROM refresh_tokens WHERE subject = ?"
	_, err := s.DB.Exec(query, subject)
	return err
}
