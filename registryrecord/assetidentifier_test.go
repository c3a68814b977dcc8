// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registryrecord_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/brano-hozza/meta-assetsd/registryrecord"
)

// test hex text round trip
func TestAssetIdentifierText(t *testing.T) {
	assetId := registryrecord.NewAssetIdentifier([]byte("fixed test record"))

	text, err := assetId.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	if string(text) != assetId.String() {
		t.Errorf("text: %s  expected: %s", text, assetId)
	}
	if fmt.Sprintf("%#v", assetId) != "<asset:"+assetId.String()+">" {
		t.Errorf("go string: %#v", assetId)
	}

	var back registryrecord.AssetIdentifier
	if err := back.UnmarshalText(text); nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if back != assetId {
		t.Errorf("round trip: %v  expected: %v", back, assetId)
	}
}

// invalid hex text must be rejected
func TestAssetIdentifierInvalidText(t *testing.T) {
	invalid := []string{
		"",
		"4b",
		"4bf", // odd number of chars
		"4473fb34cc05ed9599935a0098", // truncated
		"4473fb34cc05ed9599x35a0098ce060dfa546f40932dd7b40d35f8fe5cd6a4ff26f3dbf8ffc86ee8eb6480facfd83f3e20d69bf1e764a59256cf79b89531de37", // bad hex char
	}

	for i, text := range invalid {
		var assetId registryrecord.AssetIdentifier
		if err := assetId.UnmarshalText([]byte(text)); nil == err {
			t.Errorf("%d: accepted invalid text: %q", i, text)
		}
	}
}

// identifiers embed in JSON as hex strings
func TestAssetIdentifierJSON(t *testing.T) {
	assetId := registryrecord.NewAssetIdentifier([]byte("json test record"))

	buffer, err := json.Marshal(assetId)
	if nil != err {
		t.Fatalf("json marshal error: %s", err)
	}
	expected := `"` + assetId.String() + `"`
	if string(buffer) != expected {
		t.Errorf("json: %s  expected: %s", buffer, expected)
	}

	var back registryrecord.AssetIdentifier
	if err := json.Unmarshal(buffer, &back); nil != err {
		t.Fatalf("json unmarshal error: %s", err)
	}
	if back != assetId {
		t.Errorf("round trip: %v  expected: %v", back, assetId)
	}
}

// bytes conversion validates the length
func TestAssetIdentifierFromBytes(t *testing.T) {
	assetId := registryrecord.NewAssetIdentifier([]byte("bytes test record"))

	var back registryrecord.AssetIdentifier
	if err := registryrecord.AssetIdentifierFromBytes(&back, assetId[:]); nil != err {
		t.Fatalf("from bytes error: %s", err)
	}
	if back != assetId {
		t.Errorf("round trip: %v  expected: %v", back, assetId)
	}

	if err := registryrecord.AssetIdentifierFromBytes(&back, assetId[:10]); nil == err {
		t.Errorf("short buffer accepted")
	}
}
