package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"mirror-hall", "Mirror Hall"},
		{"glass_spheres", "Glass Spheres"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestParseSceneMetadata(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected SceneInfo
	}{
		{
			name: "complete_metadata.scene",
			content: `# Scene: Glass Study
# Description: Three glass spheres on a checkerboard

0 0 5  0 0 0  0 1 0  40`,
			expected: SceneInfo{
				ID:          "file:complete_metadata",
				Name:        "Glass Study",
				Description: "Three glass spheres on a checkerboard",
				Type:        "file",
			},
		},
		{
			name: "late_comment.scene",
			content: `# Scene: Early
0 0 5  0 0 0  0 1 0  40
# Description: never read`,
			expected: SceneInfo{
				ID:   "file:late_comment",
				Name: "Early",
				Type: "file",
			},
		},
		{
			name:    "no_metadata.scene",
			content: `0 0 5  0 0 0  0 1 0  40`,
			expected: SceneInfo{
				ID:   "file:no_metadata",
				Name: "No Metadata",
				Type: "file",
			},
		},
		{
			name:    "empty_name.scene",
			content: "#Scene:\n#Description:   Extra spaces  \n",
			expected: SceneInfo{
				ID:          "file:empty_name",
				Name:        "Empty Name",
				Description: "Extra spaces",
				Type:        "file",
			},
		},
	}

	dir := t.TempDir()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("Failed to write temp file: %v", err)
			}

			result, err := ParseSceneMetadata(path)
			if err != nil {
				t.Fatalf("ParseSceneMetadata() error: %v", err)
			}

			tc.expected.FilePath = path
			if result != tc.expected {
				t.Errorf("ParseSceneMetadata() = %+v, want %+v", result, tc.expected)
			}
		})
	}
}

func TestParseSceneMetadata_MissingFile(t *testing.T) {
	result, err := ParseSceneMetadata("nonexistent.scene")
	if err != nil {
		t.Errorf("ParseSceneMetadata() should handle missing files gracefully: %v", err)
	}
	if result.Name != "Nonexistent" {
		t.Errorf("Expected fallback name, got %q", result.Name)
	}
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"zeta.scene":  "# Scene: Alpha\n",
		"alpha.scene": "# Scene: Beta\n",
		"notes.txt":   "# Scene: Ignored\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	scenes, err := ListSceneFiles(dir, nil)
	if err != nil {
		t.Fatalf("ListSceneFiles() error: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scene files, got %d", len(scenes))
	}
	if scenes[0].Name != "Alpha" || scenes[1].Name != "Beta" {
		t.Errorf("Expected scenes sorted by name, got %q, %q", scenes[0].Name, scenes[1].Name)
	}

	missing, err := ListSceneFiles(filepath.Join(dir, "missing"), nil)
	if err != nil || missing == nil || len(missing) != 0 {
		t.Errorf("Expected empty list for missing directory, got %v, %v", missing, err)
	}
}

func TestListAllScenes(t *testing.T) {
	scenes, err := ListAllScenes(filepath.Join("..", "..", "scenes"), nil)
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}
	if len(scenes) < 3 {
		t.Fatalf("Expected built-in scenes plus bundled files, got %d", len(scenes))
	}
	if scenes[0].ID != "default" || scenes[1].ID != "mirror-corridor" {
		t.Errorf("Expected built-in scenes first, got %q, %q", scenes[0].ID, scenes[1].ID)
	}

	for _, info := range scenes {
		if info.ID == "" || info.Name == "" {
			t.Errorf("Scene missing ID or name: %+v", info)
		}
		if info.Type == "file" && info.FilePath == "" {
			t.Errorf("File scene missing path: %+v", info)
		}
		if info.Type == "builtin" {
			sc, err := NewBuiltInScene(info.ID)
			if err != nil || sc.Validate() != nil {
				t.Errorf("Built-in scene %q unusable: %v", info.ID, err)
			}
		}
	}
}

func TestNewBuiltInScene_Unknown(t *testing.T) {
	if sc, err := NewBuiltInScene("teapot"); err == nil || sc != nil {
		t.Errorf("Expected error for unknown scene, got %v, %v", sc, err)
	}
}
