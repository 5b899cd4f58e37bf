/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package idgen generates identifiers, e.g. to tell generator instances apart in logs.
package idgen

import (
	"github.com/gofrs/uuid/v5"

	"github.com/ARM-software/golang-closures/commonerrors"
)

// GenerateUUID4 generates a random UUID.
func GenerateUUID4() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", commonerrors.WrapError(commonerrors.ErrUnexpected, err, "failed generating uuid")
	}
	return id.String(), nil
}

// IsValidUUID checks whether u is a valid UUID.
func IsValidUUID(u string) bool {
	_, err := uuid.FromString(u)
	return err == nil
}
