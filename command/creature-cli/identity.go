// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/go-argon2"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/bitmark-inc/creatured/account"
)

const (
	saltSize  = 16
	nonceSize = 24
)

// identity file contents
//
// exactly one of PrivateKey or EncryptedPrivateKey is present
type identity struct {
	Account             *account.Account `json:"account"`
	PublicKey           string           `json:"public_key"`
	PrivateKey          string           `json:"private_key,omitempty"`
	Salt                string           `json:"salt,omitempty"`
	EncryptedPrivateKey string           `json:"encrypted_private_key,omitempty"`
}

// create a new random key, encrypted if a password is given
func makeIdentity(testnet bool, password string) (*identity, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}

	id := &identity{
		Account: &account.Account{
			AccountInterface: &account.ED25519Account{
				Test:      testnet,
				PublicKey: publicKey,
			},
		},
		PublicKey: hex.EncodeToString(publicKey),
	}

	if "" == password {
		id.PrivateKey = hex.EncodeToString(privateKey)
		return id, nil
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); nil != err {
		return nil, err
	}
	secretKey, err := generateKey(password, salt)
	if nil != err {
		return nil, err
	}
	encrypted, err := encryptData(privateKey, secretKey)
	if nil != err {
		return nil, err
	}

	id.Salt = hex.EncodeToString(salt)
	id.EncryptedPrivateKey = encrypted
	return id, nil
}

// write without overwriting, readable only by the owner
func writeIdentity(fileName string, id *identity) error {
	data, err := json.MarshalIndent(id, "", "  ")
	if nil != err {
		return err
	}

	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_EXCL|os.O_CREATE, 0600)
	if nil != err {
		if os.IsExist(err) {
			return ErrIdentityFileExists
		}
		return err
	}
	_, err = f.Write(append(data, '\n'))
	if closeErr := f.Close(); nil == err {
		err = closeErr
	}
	if nil != err {
		_ = os.Remove(fileName)
	}
	return err
}

func loadIdentity(fileName string) (*identity, error) {
	if "" == fileName {
		return nil, ErrMissingIdentityFile
	}

	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	var id identity
	err = json.Unmarshal(data, &id)
	if nil != err {
		return nil, err
	}
	if !account.Valid(id.Account) {
		return nil, ErrIdentityMismatch
	}
	return &id, nil
}

// true if a password is needed to read the private key
func (id *identity) encrypted() bool {
	return "" != id.EncryptedPrivateKey
}

// read only the account, no password needed
func readAccount(fileName string) (*account.Account, error) {
	id, err := loadIdentity(fileName)
	if nil != err {
		return nil, err
	}
	return id.Account, nil
}

// read and check the account matches the private key
//
// getPassword is only called for an encrypted identity
func readIdentity(fileName string, getPassword func() (string, error)) (*account.Account, ed25519.PrivateKey, error) {
	id, err := loadIdentity(fileName)
	if nil != err {
		return nil, nil, err
	}

	var key []byte
	if id.encrypted() {
		password, err := getPassword()
		if nil != err {
			return nil, nil, err
		}
		if "" == password {
			return nil, nil, ErrMissingPassword
		}
		salt, err := hex.DecodeString(id.Salt)
		if nil != err || saltSize != len(salt) {
			return nil, nil, ErrInvalidSalt
		}
		secretKey, err := generateKey(password, salt)
		if nil != err {
			return nil, nil, err
		}
		key, err = decryptData(id.EncryptedPrivateKey, secretKey)
		if nil != err {
			return nil, nil, err
		}
	} else {
		key, err = hex.DecodeString(id.PrivateKey)
		if nil != err {
			return nil, nil, ErrInvalidPrivateKey
		}
	}

	if ed25519.PrivateKeySize != len(key) {
		return nil, nil, ErrInvalidPrivateKey
	}
	privateKey := ed25519.PrivateKey(key)

	publicKey := privateKey.Public().(ed25519.PublicKey)
	if hex.EncodeToString(publicKey) != hex.EncodeToString(id.Account.PublicKeyBytes()) {
		return nil, nil, ErrIdentityMismatch
	}

	return id.Account, privateKey, nil
}

// derive a secretbox key from the password
func generateKey(password string, salt []byte) (*[32]byte, error) {
	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     32,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	hash, err := argon2.Hash(ctx, []byte(password), salt)
	if nil != err {
		return nil, err
	}

	var secretKey [32]byte
	copy(secretKey[:], hash)
	return &secretKey, nil
}

// encrypt and convert to hex, the random nonce is the prefix
func encryptData(data []byte, secretKey *[32]byte) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); nil != err {
		return "", err
	}

	ciphertext := secretbox.Seal(nonce[:], data, &nonce, secretKey)
	return hex.EncodeToString(ciphertext), nil
}

// decrypt a hex string produced by encryptData
func decryptData(ciphertext string, secretKey *[32]byte) ([]byte, error) {
	encrypted, err := hex.DecodeString(ciphertext)
	if nil != err || len(encrypted) <= nonceSize {
		return nil, ErrInvalidPrivateKey
	}

	var nonce [nonceSize]byte
	copy(nonce[:], encrypted[:nonceSize])

	decrypted, ok := secretbox.Open(nil, encrypted[nonceSize:], &nonce, secretKey)
	if !ok {
		return nil, ErrWrongPassword
	}
	return decrypted, nil
}
