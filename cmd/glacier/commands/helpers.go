package commands

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/glacierdb/glacier/catalog"
	"github.com/glacierdb/glacier/config"
	"github.com/glacierdb/glacier/db"
	"github.com/glacierdb/glacier/errors"
	"github.com/glacierdb/glacier/logger"
	"github.com/glacierdb/glacier/table"
)

// openStore opens the configured catalog database and binds a store to the
// configured table. Callers must close the returned database handle.
func openStore() (*catalog.Store, *sql.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, errors.Wrap(err, "load configuration")
	}

	conn, err := db.OpenWithMigrations(cfg.Catalog.Path, logger.Logger)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open catalog")
	}

	return catalog.NewStore(conn, cfg.Catalog.Table, logger.Logger), conn, nil
}

func parseSnapshotID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid snapshot id %q", arg)
	}
	return id, nil
}

func formatTimestamp(millis int64) string {
	return time.UnixMilli(millis).UTC().Format(time.RFC3339)
}

func formatParent(snap *table.Snapshot) string {
	if parent, ok := snap.Parent(); ok {
		return strconv.FormatInt(parent, 10)
	}
	return "-"
}
