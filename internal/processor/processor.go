/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package processor

import (
	"context"
	"fmt"

	"mini-venmo-go/internal/ledger"

	"go.uber.org/zap"
)

// Compile-time check: *Sandbox must satisfy ledger.CardProcessor.
var _ ledger.CardProcessor = (*Sandbox)(nil)

// Test card numbers accepted by the sandbox network.
var sandboxCards = []string{
	"4111111111111111",
	"4242424242424242",
}

// Sandbox is the card network used in place of a real processor. Validation
// is an exact match against the sandbox test numbers and charges always
// settle immediately.
type Sandbox struct{}

func NewSandbox() *Sandbox {
	return &Sandbox{}
}

func (s *Sandbox) Validate(cardNumber string) error {
	for _, card := range sandboxCards {
		if cardNumber == card {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ledger.ErrInvalidCreditCard, cardNumber)
}

func (s *Sandbox) Charge(_ context.Context, cardNumber string) error {
	zap.L().Info("Card charged", zap.String("card", maskCard(cardNumber)))
	return nil
}

// maskCard keeps only the last four digits for log output.
func maskCard(cardNumber string) string {
	if len(cardNumber) <= 4 {
		return cardNumber
	}
	return "****" + cardNumber[len(cardNumber)-4:]
}
