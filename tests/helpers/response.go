// response.go
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

package helpers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"testing"

	"github.com/localnerve/jam-build-entities/internal/utils"
)

// AssertStatus verifies the HTTP status code
func AssertStatus(t testing.TB, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("Expected status %d, got %d", expected, resp.StatusCode)
	}
}

// ParseJSON decodes the response body into the target
func ParseJSON(t testing.TB, resp *http.Response, target any) {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("Failed to decode JSON: %v. Body: %s", err, string(body))
	}
}

// AssertErrorEnvelope decodes a failure body and checks the fields a client
// branches on. entity is empty for failures outside any entity route.
func AssertErrorEnvelope(t testing.TB, resp *http.Response, status int, kind, entity string) utils.ErrorResponseStruct {
	t.Helper()
	AssertStatus(t, resp, status)

	var envelope utils.ErrorResponseStruct
	ParseJSON(t, resp, &envelope)
	if envelope.Ok {
		t.Errorf("Expected ok false in error envelope")
	}
	if envelope.Status != status {
		t.Errorf("Expected envelope status %d, got %d", status, envelope.Status)
	}
	if envelope.Type != kind {
		t.Errorf("Expected error type %q, got %q", kind, envelope.Type)
	}
	if envelope.EntityName != entity {
		t.Errorf("Expected entityName %q, got %q", entity, envelope.EntityName)
	}
	if envelope.Message == "" || envelope.Timestamp == "" {
		t.Errorf("Expected message and timestamp, got %+v", envelope)
	}
	return envelope
}

// AssertTotalCount verifies the X-Total-Count header sent with a paged list
func AssertTotalCount(t testing.TB, resp *http.Response, expected int64) {
	t.Helper()
	total, err := strconv.ParseInt(resp.Header.Get("X-Total-Count"), 10, 64)
	if err != nil {
		t.Errorf("Expected a numeric X-Total-Count, got %q", resp.Header.Get("X-Total-Count"))
		return
	}
	if total != expected {
		t.Errorf("Expected X-Total-Count %d, got %d", expected, total)
	}
}

// AssertNoContent verifies that the response body is empty (for 204s)
func AssertNoContent(t testing.TB, resp *http.Response) {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	if len(body) > 0 {
		t.Errorf("Expected empty body for 204 No Content, got: %s", string(body))
	}
}
