// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package workflow

// State is a template's position in the purchase/download lifecycle for one
// session. Transitions only ever move forward:
//
//	Locked -> Purchasing -> Unlocked -> Downloading -> Downloaded
//
// Free templates start at Unlocked. Failed operations return the template
// to the last stable state (Locked or Unlocked); the transient states are
// never persisted.
type State string

const (
	StateLocked      State = "locked"
	StatePurchasing  State = "purchasing"
	StateUnlocked    State = "unlocked"
	StateDownloading State = "downloading"
	StateDownloaded  State = "downloaded"
)
