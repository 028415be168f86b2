package sheets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/issueboard/internal/core/domain"
	"go.trai.ch/issueboard/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"
)

type sequenceSource struct {
	tokens []string
	i      int
}

func (s *sequenceSource) Token() (*oauth2.Token, error) {
	tok := &oauth2.Token{AccessToken: s.tokens[s.i], TokenType: "Bearer"}
	if s.i < len(s.tokens)-1 {
		s.i++
	}
	return tok, nil
}

func TestSaveAndLoadToken(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "token.json")
	require.NoError(t, saveToken(path, &oauth2.Token{AccessToken: "a", RefreshToken: "r"}))

	tok, err := loadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "a", tok.AccessToken)
	assert.Equal(t, "r", tok.RefreshToken)
}

func TestLoadToken_Corrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), domain.PrivateFilePerm))
	_, err := loadToken(path)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{}"), domain.PrivateFilePerm))
	_, err = loadToken(path)
	require.Error(t, err)
}

func TestCachingTokenSource_PersistsRefresh(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	path := filepath.Join(t.TempDir(), "token.json")
	ts := &cachingTokenSource{
		base:   &sequenceSource{tokens: []string{"old", "new"}},
		path:   path,
		last:   "old",
		logger: log,
	}

	_, err := ts.Token()
	require.NoError(t, err)
	assert.NoFileExists(t, path)

	_, err = ts.Token()
	require.NoError(t, err)

	tok, err := loadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "new", tok.AccessToken)
}
