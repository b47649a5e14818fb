package classifier

import "testing"

func TestClassify(t *testing.T) {
	testCases := []struct {
		ext      string
		expected Category
	}{
		{"jpg", Images},
		{"png", Images},
		{"nef", Images},
		{"pdf", Documents},
		{"md", Documents},
		{"numbers", Documents},
		{"mp3", Music},
		{"alac", Music},
		{"mp4", Videos},
		{"3gp", Videos},
		{"zip", Archives},
		{"dmg", Archives},
		{"xyz", Others},
		{"", Others},
	}

	for _, tc := range testCases {
		t.Run(tc.ext, func(t *testing.T) {
			category := Classify(tc.ext)
			if category != tc.expected {
				t.Errorf("Classify(%q) = %v, want %v", tc.ext, category, tc.expected)
			}
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	for _, ext := range []string{"JPG", "jpg", "JpG", ".JPG", ".jpg"} {
		if category := Classify(ext); category != Images {
			t.Errorf("Classify(%q) = %v, want %v", ext, category, Images)
		}
	}
}

func TestClassify_LeadingDot(t *testing.T) {
	if category := Classify(".pdf"); category != Documents {
		t.Errorf("Classify(\".pdf\") = %v, want %v", category, Documents)
	}
}

func TestClassify_CodeExtensionsGoToOthers(t *testing.T) {
	// 代码类扩展名刻意不单独建类
	codeExts := []string{"py", "js", "html", "css", "java", "c", "cpp", "h",
		"sh", "php", "rb", "go", "swift", "ts", "json", "xml", "yml", "yaml"}

	for _, ext := range codeExts {
		if category := Classify(ext); category != Others {
			t.Errorf("Classify(%q) = %v, want %v", ext, category, Others)
		}
	}
}

func TestCategory_Folder(t *testing.T) {
	testCases := []struct {
		category Category
		expected string
	}{
		{Images, "images"},
		{Documents, "documents"},
		{Music, "musics"},
		{Videos, "videos"},
		{Archives, "archives"},
		{Others, "others"},
	}

	for _, tc := range testCases {
		if folder := tc.category.Folder(); folder != tc.expected {
			t.Errorf("%v.Folder() = %q, want %q", tc.category, folder, tc.expected)
		}
	}
}

func TestAll(t *testing.T) {
	all := All()

	if len(all) != 6 {
		t.Fatalf("Expected 6 categories, got %d", len(all))
	}

	if all[0] != Images || all[len(all)-1] != Others {
		t.Error("Expected fixed category order with images first and others last")
	}
}
