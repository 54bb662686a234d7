// main.go
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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/localnerve/jam-build-entities/internal/config"
	"github.com/localnerve/jam-build-entities/internal/database"
	"github.com/localnerve/jam-build-entities/internal/logging"
	"github.com/localnerve/jam-build-entities/internal/services"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logging.New("info")
		boot.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// stdout carries the JSON result only
	log := logging.NewWithWriter(os.Stderr, cfg.LogLevel)

	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	healthy, err := report(ctx, cfg, db, log, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal health check result")
	}
	if !healthy {
		database.Close(db)
		os.Exit(1)
	}
}

// report writes the indented health result to w
func report(ctx context.Context, cfg *config.Config, db *gorm.DB, log zerolog.Logger, w io.Writer) (bool, error) {
	result := services.HealthCheck(ctx, cfg, db, log)

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return false, err
	}
	fmt.Fprintln(w, string(output))
	return result.Healthy(), nil
}
