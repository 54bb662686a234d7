// common.go
//
// Generated entity CRUD REST services for the jam-build data tier
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of jam-build-entities.
// jam-build-entities is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// jam-build-entities is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with jam-build-entities.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-entities/internal/repository"
)

// NDJSON is the media type of streamed list responses
const NDJSON = "application/x-ndjson"

// parsePage reads page, size and sort query parameters.
// It returns nil when none is present. Sort accepts both repeated keys
// and "property,direction" pairs within one value, e.g. sort=name,desc&sort=id.
func parsePage(c *fiber.Ctx) (*repository.PageOptions, error) {
	args := c.Context().QueryArgs()

	var sorts []repository.SortOrder
	for key, value := range args.All() {
		if string(key) != "sort" {
			continue
		}
		parts := strings.Split(string(value), ",")
		property := strings.TrimSpace(parts[0])
		if property == "" {
			continue
		}
		order := repository.SortOrder{Property: property}
		if len(parts) > 1 {
			switch strings.ToLower(strings.TrimSpace(parts[1])) {
			case "desc":
				order.Desc = true
			case "asc", "":
			default:
				return nil, fmt.Errorf("invalid sort direction %q", parts[1])
			}
		}
		sorts = append(sorts, order)
	}

	pageParam, sizeParam := c.Query("page"), c.Query("size")
	if pageParam == "" && sizeParam == "" && len(sorts) == 0 {
		return nil, nil
	}

	page, err := parseNonNegative("page", pageParam, 0)
	if err != nil {
		return nil, err
	}
	size, err := parseNonNegative("size", sizeParam, 20)
	if err != nil {
		return nil, err
	}
	if pageParam == "" && sizeParam == "" {
		// sort only: ordered but unsliced
		size = 0
	}

	return &repository.PageOptions{Page: page, Size: size, Sort: sorts}, nil
}

func parseNonNegative(name, value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	return n, nil
}

// ParseInt64ID parses a store-assigned numeric identifier
func ParseInt64ID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

// ParseStringID accepts any non-empty identifier
func ParseStringID(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("empty id")
	}
	return raw, nil
}

func wantsStream(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderAccept), NDJSON)
}
