// SPDX-FileCopyrightText: © 2025 The hybridkem authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package schemes contains the registry of hybrid KEM schemes.
package schemes

import (
	"strings"

	"github.com/oqs-go/hybridkem/hybrid"
	"github.com/oqs-go/hybridkem/kem/kyber768"
	"github.com/oqs-go/hybridkem/kem/mlkem768"
	"github.com/oqs-go/hybridkem/nike/x25519"
	"github.com/oqs-go/hybridkem/nike/x448"
	"github.com/oqs-go/hybridkem/rand"
)

var allSchemes = []*hybrid.Scheme{
	hybrid.New("x25519_mlkem768", mlkem768.Scheme(), x25519.Scheme(rand.Reader)),
	hybrid.New("x448_mlkem768", mlkem768.Scheme(), x448.Scheme(rand.Reader)),
	hybrid.New("x25519_kyber768", kyber768.Scheme(), x25519.Scheme(rand.Reader)),
	hybrid.New("x448_kyber768", kyber768.Scheme(), x448.Scheme(rand.Reader)),
}

var allSchemeNames map[string]*hybrid.Scheme

func init() {
	allSchemeNames = make(map[string]*hybrid.Scheme)
	for _, scheme := range allSchemes {
		allSchemeNames[strings.ToLower(scheme.Name())] = scheme
	}
}

// ByName returns the hybrid scheme with the given name, or nil if no
// such scheme is registered. Names are case insensitive.
func ByName(name string) *hybrid.Scheme {
	return allSchemeNames[strings.ToLower(name)]
}

// All returns all registered hybrid schemes.
func All() []*hybrid.Scheme {
	a := allSchemes
	return a[:len(a):len(a)]
}
