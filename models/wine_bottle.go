// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// WineBottle is a record owned by the remote inventory. Title uniquely
// identifies a bottle and is the address used for deletion.
type WineBottle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PhotoURL    string `json:"photo"`
}

// WineBottleDraft is the unsaved form state for a new bottle. PhotoPath points
// to a local file uploaded as the multipart "photo" part; empty means no photo.
type WineBottleDraft struct {
	Title       string
	Description string
	PhotoPath   string
}

// Reset clears every field of the draft.
func (d *WineBottleDraft) Reset() {
	*d = WineBottleDraft{}
}

// IsZero reports whether no field of the draft has been filled.
func (d WineBottleDraft) IsZero() bool {
	return d == WineBottleDraft{}
}
