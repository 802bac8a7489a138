package catalog

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/glacierdb/glacier/errors"
)

// The resolver contract requires storage failures to fold into absence, not
// surface as errors: the lineage engine treats nil as the history boundary.
func TestSnapshotLookupFoldsErrorsIntoAbsence(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectQuery("SELECT snapshot_id").
		WillReturnError(errors.New("disk I/O error"))

	s := NewStore(mockDB, "events", zap.NewNop().Sugar())
	assert.Nil(t, s.Snapshot(7))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefLookupFoldsErrorsIntoAbsence(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectQuery("SELECT name, type, snapshot_id").
		WillReturnError(errors.New("disk I/O error"))

	s := NewStore(mockDB, "events", zap.NewNop().Sugar())
	assert.Nil(t, s.Ref("main"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotsListPropagatesErrors(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectQuery("SELECT snapshot_id").
		WillReturnError(errors.New("disk I/O error"))

	s := NewStore(mockDB, "events", nil)
	_, err = s.Snapshots()
	assert.Error(t, err)
}
