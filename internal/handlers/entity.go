// entity.go
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
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-entities/internal/metrics"
	"github.com/localnerve/jam-build-entities/internal/middleware"
	"github.com/localnerve/jam-build-entities/internal/models"
	"github.com/localnerve/jam-build-entities/internal/repository"
	"github.com/localnerve/jam-build-entities/internal/types"
	"github.com/localnerve/jam-build-entities/internal/utils"
	"github.com/rs/zerolog"
)

// Resource constrains a pointer to an entity that supports merge patching
type Resource[T any, ID comparable] interface {
	*T
	models.Entity[ID]
	Merge(patch *T)
}

// ListFunc produces the entities of a list request
type ListFunc[T any] func(ctx context.Context, page *repository.PageOptions) iter.Seq2[*T, error]

// Lister selects an alternative list query from the request, or returns a nil ListFunc for FindAll.
// Filtered lists are not counted for X-Total-Count.
type Lister[T any] func(c *fiber.Ctx) (list ListFunc[T], filtered bool, err error)

// Finder selects an alternative single read from the request, or returns a nil func for FindByID
type Finder[T any, ID comparable] func(c *fiber.Ctx) func(ctx context.Context, id ID) (*T, error)

// Guards are optional handlers run before write routes
type Guards struct {
	Write  fiber.Handler
	Delete fiber.Handler
}

// EntityHandler serves the CRUD endpoints of one entity type
type EntityHandler[T any, PT Resource[T, ID], ID comparable] struct {
	// Name is the entity name used in alerts, errors and metrics
	Name string
	// Path is the collection path segment under /api
	Path       string
	AppName    string
	Repo       repository.Repository[T, ID]
	ParseID    func(raw string) (ID, error)
	PatchTypes []string
	Timeout    time.Duration
	Log        zerolog.Logger

	Lister Lister[T]
	Finder Finder[T, ID]
}

// Register mounts the entity routes on router
func (h *EntityHandler[T, PT, ID]) Register(router fiber.Router, guards Guards) {
	collection := "/" + h.Path
	item := collection + "/:id"

	router.Post(collection, guarded(guards.Write, h.Create)...)
	router.Get(collection, h.GetAll)
	router.Get(item, h.Get)
	router.Put(item, guarded(guards.Write, h.Update)...)
	router.Patch(item, guarded(guards.Write, middleware.RequireContentType(h.PatchTypes...), h.PartialUpdate)...)
	router.Delete(item, guarded(guards.Delete, h.Delete)...)

	// updates and deletes need an id
	router.Put(collection, MethodNotAllowed)
	router.Patch(collection, MethodNotAllowed)
	router.Delete(collection, MethodNotAllowed)
}

func guarded(guard fiber.Handler, handlers ...fiber.Handler) []fiber.Handler {
	if guard == nil {
		return handlers
	}
	return append([]fiber.Handler{guard}, handlers...)
}

// MethodNotAllowed rejects a verb the path does not support
func MethodNotAllowed(c *fiber.Ctx) error {
	return types.MethodNotAllowed(c.Method())
}

func (h *EntityHandler[T, PT, ID]) requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	if h.Timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), h.Timeout)
}

func (h *EntityHandler[T, PT, ID]) pathID(c *fiber.Ctx) (ID, *types.CustomError) {
	raw, err := url.PathUnescape(c.Params("id"))
	if err != nil {
		var zero ID
		return zero, types.Validation(h.Name, fmt.Sprintf("invalid id %q", c.Params("id")))
	}
	id, err := h.ParseID(raw)
	if err != nil {
		return id, types.Validation(h.Name, fmt.Sprintf("invalid id %q", raw))
	}
	return id, nil
}

func (h *EntityHandler[T, PT, ID]) decode(c *fiber.Ctx) (*T, *types.CustomError) {
	entity := new(T)
	if err := json.Unmarshal(c.Body(), entity); err != nil {
		return nil, types.Validation(h.Name, "Invalid request body: "+err.Error())
	}
	return entity, nil
}

func (h *EntityHandler[T, PT, ID]) validate(entity *T) *types.CustomError {
	v, ok := any(entity).(models.Validator)
	if !ok {
		return nil
	}
	if err := v.Validate(); err != nil {
		return types.Validation(h.Name, err.Error())
	}
	return nil
}

// reject counts a client error and returns it unchanged
func (h *EntityHandler[T, PT, ID]) reject(operation string, err *types.CustomError) error {
	metrics.Observe(h.Name, operation, metrics.OutcomeRejected)
	return err
}

// fail maps a store error onto the response taxonomy
func (h *EntityHandler[T, PT, ID]) fail(operation string, err error) error {
	if repository.IsConcurrentModification(err) {
		return h.reject(operation, types.NotFound(h.Name, h.Name+" not found"))
	}
	var sortErr *repository.UnknownSortError
	if errors.As(err, &sortErr) {
		return h.reject(operation, types.Validation(h.Name, sortErr.Error()))
	}
	metrics.Observe(h.Name, operation, metrics.OutcomeError)
	h.Log.Error().Err(err).Str("entity", h.Name).Str("operation", operation).Msg("Store operation failed")
	return types.Internal(fmt.Sprintf("Failed to %s %s", operation, h.Name))
}

func (h *EntityHandler[T, PT, ID]) ok(operation string) {
	metrics.Observe(h.Name, operation, metrics.OutcomeOK)
}

func formatID[ID comparable](id *ID) string {
	return fmt.Sprint(*id)
}

// Create handles POST /api/<path>
func (h *EntityHandler[T, PT, ID]) Create(c *fiber.Ctx) error {
	const op = "create"
	h.Log.Debug().Str("entity", h.Name).Msg("REST request to save")

	entity, cerr := h.decode(c)
	if cerr != nil {
		return h.reject(op, cerr)
	}
	if PT(entity).GetID() != nil {
		return h.reject(op, types.IDAlreadyExists(h.Name))
	}
	if cerr := h.validate(entity); cerr != nil {
		return h.reject(op, cerr)
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	saved, err := h.Repo.Save(ctx, entity)
	if err != nil {
		return h.fail(op, err)
	}

	id := formatID(PT(saved).GetID())
	c.Location("/api/" + h.Path + "/" + url.PathEscape(id))
	utils.EntityAlert(c, h.AppName, h.Name, "created", id)
	h.ok(op)
	return utils.SuccessResponse(c, saved, fiber.StatusCreated)
}

// checkBodyID applies the identifier rules shared by full and partial updates
func (h *EntityHandler[T, PT, ID]) checkBodyID(pathID ID, entity *T) *types.CustomError {
	bodyID := PT(entity).GetID()
	if bodyID == nil {
		return types.IDMissing(h.Name)
	}
	if *bodyID != pathID {
		return types.IDMismatch(h.Name)
	}
	return nil
}

func (h *EntityHandler[T, PT, ID]) readForUpdate(c *fiber.Ctx) (ID, *T, *types.CustomError) {
	id, cerr := h.pathID(c)
	if cerr != nil {
		return id, nil, cerr
	}
	entity, cerr := h.decode(c)
	if cerr != nil {
		return id, nil, cerr
	}
	if cerr := h.checkBodyID(id, entity); cerr != nil {
		return id, nil, cerr
	}
	return id, entity, nil
}

// Update handles PUT /api/<path>/:id, replacing every field
func (h *EntityHandler[T, PT, ID]) Update(c *fiber.Ctx) error {
	const op = "update"
	id, entity, cerr := h.readForUpdate(c)
	if cerr != nil {
		return h.reject(op, cerr)
	}
	h.Log.Debug().Str("entity", h.Name).Interface("id", id).Msg("REST request to update")

	if cerr := h.validate(entity); cerr != nil {
		return h.reject(op, cerr)
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	exists, err := h.Repo.ExistsByID(ctx, id)
	if err != nil {
		return h.fail(op, err)
	}
	if !exists {
		return h.reject(op, types.EntityNotFound(h.Name))
	}

	saved, err := h.Repo.Save(ctx, entity)
	if err != nil {
		return h.fail(op, err)
	}

	utils.EntityAlert(c, h.AppName, h.Name, "updated", formatID(&id))
	h.ok(op)
	return utils.SuccessResponse(c, saved, fiber.StatusOK)
}

// PartialUpdate handles PATCH /api/<path>/:id, overlaying the non-null fields of the body
func (h *EntityHandler[T, PT, ID]) PartialUpdate(c *fiber.Ctx) error {
	const op = "patch"
	id, patch, cerr := h.readForUpdate(c)
	if cerr != nil {
		return h.reject(op, cerr)
	}
	h.Log.Debug().Str("entity", h.Name).Interface("id", id).Msg("REST request to partially update")

	ctx, cancel := h.requestContext(c)
	defer cancel()

	exists, err := h.Repo.ExistsByID(ctx, id)
	if err != nil {
		return h.fail(op, err)
	}
	if !exists {
		return h.reject(op, types.EntityNotFound(h.Name))
	}

	existing, err := h.Repo.FindByID(ctx, id)
	if err != nil {
		return h.fail(op, err)
	}
	if existing == nil {
		return h.reject(op, types.NotFound(h.Name, h.Name+" not found"))
	}

	PT(existing).Merge(patch)

	saved, err := h.Repo.Save(ctx, existing)
	if err != nil {
		return h.fail(op, err)
	}

	utils.EntityAlert(c, h.AppName, h.Name, "updated", formatID(&id))
	h.ok(op)
	return utils.SuccessResponse(c, saved, fiber.StatusOK)
}

// Get handles GET /api/<path>/:id
func (h *EntityHandler[T, PT, ID]) Get(c *fiber.Ctx) error {
	const op = "get"
	id, cerr := h.pathID(c)
	if cerr != nil {
		return h.reject(op, cerr)
	}
	h.Log.Debug().Str("entity", h.Name).Interface("id", id).Msg("REST request to get")

	find := h.Repo.FindByID
	if h.Finder != nil {
		if alt := h.Finder(c); alt != nil {
			find = alt
		}
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	entity, err := find(ctx, id)
	if err != nil {
		return h.fail(op, err)
	}
	if entity == nil {
		return h.reject(op, types.NotFound(h.Name, h.Name+" not found"))
	}

	h.ok(op)
	return utils.SuccessResponse(c, entity, fiber.StatusOK)
}

// GetAll handles GET /api/<path>, as a JSON array or streamed as NDJSON
func (h *EntityHandler[T, PT, ID]) GetAll(c *fiber.Ctx) error {
	const op = "list"
	h.Log.Debug().Str("entity", h.Name).Msg("REST request to get all")

	page, err := parsePage(c)
	if err != nil {
		return h.reject(op, types.Validation(h.Name, err.Error()))
	}
	// a streamed response has already sent 200 when the query runs
	if err := h.Repo.CheckPage(page); err != nil {
		return h.fail(op, err)
	}

	list := ListFunc[T](h.Repo.FindAll)
	filtered := false
	if h.Lister != nil {
		alt, isFiltered, err := h.Lister(c)
		if err != nil {
			var cerr *types.CustomError
			if errors.As(err, &cerr) {
				return h.reject(op, cerr)
			}
			return h.reject(op, types.Validation(h.Name, err.Error()))
		}
		if alt != nil {
			list, filtered = alt, isFiltered
		}
	}

	if wantsStream(c) {
		return h.stream(c, list, page)
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if page != nil && page.Size > 0 && !filtered {
		total, err := h.Repo.Count(ctx)
		if err != nil {
			return h.fail(op, err)
		}
		c.Set("X-Total-Count", strconv.FormatInt(total, 10))
	}

	entities, err := repository.Collect(list(ctx, page))
	if err != nil {
		return h.fail(op, err)
	}

	h.ok(op)
	return utils.SuccessResponse(c, entities, fiber.StatusOK)
}

// stream writes one JSON document per line as rows arrive.
// The query runs after the handler returns, so it gets its own deadline.
func (h *EntityHandler[T, PT, ID]) stream(c *fiber.Ctx, list ListFunc[T], page *repository.PageOptions) error {
	timeout := h.Timeout
	log := h.Log.With().Str("entity", h.Name).Logger()

	c.Set(fiber.HeaderContentType, NDJSON)
	c.Status(fiber.StatusOK)
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		ctx, cancel := context.Background(), context.CancelFunc(func() {})
		if timeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, timeout)
		}
		defer cancel()

		enc := json.NewEncoder(w)
		count := 0
		for entity, err := range list(ctx, page) {
			if err != nil {
				log.Error().Err(err).Int("sent", count).Msg("Stream aborted")
				return
			}
			if err := enc.Encode(entity); err != nil {
				return
			}
			// flush failure means the client went away
			if err := w.Flush(); err != nil {
				log.Debug().Err(err).Int("sent", count).Msg("Stream client gone")
				return
			}
			count++
		}
	})

	h.ok("stream")
	return nil
}

// Delete handles DELETE /api/<path>/:id; absent ids still yield 204
func (h *EntityHandler[T, PT, ID]) Delete(c *fiber.Ctx) error {
	const op = "delete"
	id, cerr := h.pathID(c)
	if cerr != nil {
		return h.reject(op, cerr)
	}
	h.Log.Debug().Str("entity", h.Name).Interface("id", id).Msg("REST request to delete")

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.Repo.DeleteByID(ctx, id); err != nil {
		return h.fail(op, err)
	}

	utils.EntityAlert(c, h.AppName, h.Name, "deleted", formatID(&id))
	h.ok(op)
	return c.SendStatus(fiber.StatusNoContent)
}
