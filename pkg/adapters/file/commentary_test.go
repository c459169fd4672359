package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/najia/pkg/adapters/file"
	"github.com/aretw0/najia/pkg/domain"
	contract "github.com/aretw0/najia/pkg/ports/tests"
)

const modestyYAML = `
地山谦:
  judgment: 谦：亨，君子有终。
  image: 地中有山，谦。
  lines:
    - 初六：谦谦君子，用涉大川，吉。
    - 六二：鸣谦，贞吉。
乾为天:
  judgment: 乾：元亨利贞。
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCommentary_YAML(t *testing.T) {
	c, err := file.Load(writeFile(t, "commentary.yaml", modestyYAML))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	contract.CommentaryContractTest(t, c, map[string]domain.Text{
		"地山谦": {Judgment: "谦：亨，君子有终。"},
		"乾为天": {Judgment: "乾：元亨利贞。"},
	})

	text, ok, err := c.Lookup(context.Background(), "地山谦")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "地中有山，谦。", text.Image)
	assert.Len(t, text.Lines, 2)
}

func TestCommentary_JSON(t *testing.T) {
	path := writeFile(t, "commentary.json", `{"地山谦": {"judgment": "谦：亨，君子有终。"}}`)
	c, err := file.Load(path)
	require.NoError(t, err)

	text, ok, err := c.Lookup(context.Background(), "地山谦")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "地山谦", text.Name)
	assert.Equal(t, path, c.Path())
}

func TestCommentary_MissingFileIsEmpty(t *testing.T) {
	c, err := file.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	_, ok, err := c.Lookup(context.Background(), "地山谦")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestCommentary_BadDocument(t *testing.T) {
	_, err := file.Load(writeFile(t, "broken.json", `{"地山谦": [`))
	assert.Error(t, err)

	_, err = file.Load(writeFile(t, "broken.yaml", "- just\n- a list\n"))
	assert.Error(t, err)
}

func TestCommentary_SaveAndReload(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.yaml", "out.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, "nested", name)
			require.NoError(t, file.Save(path, map[string]domain.Text{
				"水山蹇": {Judgment: "蹇：利西南，不利东北。"},
			}))

			c, err := file.Load(path)
			require.NoError(t, err)
			text, ok, err := c.Lookup(context.Background(), "水山蹇")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "蹇：利西南，不利东北。", text.Judgment)

			require.NoError(t, file.Save(path, map[string]domain.Text{}))
			require.NoError(t, c.Reload())
			assert.Equal(t, 0, c.Len())
		})
	}
}
