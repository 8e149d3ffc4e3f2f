package store

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/selim/coursereg/internal/app/repositories"
)

func newTestStore(t *testing.T, dir string) *Store {
	t.Helper()
	repos, err := repositories.NewRepositories(dir)
	if err != nil {
		t.Fatalf("NewRepositories: %v", err)
	}
	return NewStore(repos, zerolog.Nop())
}

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestLoadSeedsFallbackCatalog(t *testing.T) {
	dir := t.TempDir()
	st := newTestStore(t, dir)

	if err := st.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	courses := st.Courses()
	if len(courses) != 10 {
		t.Fatalf("got %d seeded courses, want 10", len(courses))
	}

	// Seeding persists the catalog immediately
	if _, err := os.Stat(filepath.Join(dir, "courses.csv")); err != nil {
		t.Errorf("courses.csv not written after seeding: %v", err)
	}
}

func TestLoadSkipsUnknownEnrollmentRefs(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "students.csv", "student_id,name\n1001,Alice\n")
	writeFixture(t, dir, "courses.csv", "course_id,name,instructor,day,time\nCS101,Computer Science 101,Prof. Wilson,Monday,13:00-13:50\n")
	writeFixture(t, dir, "enrollments.csv", "student_id,course_id\n"+
		"1001,CS101\n"+
		"9999,CS101\n"+ // unknown student
		"1001,NOPE1\n") // unknown course

	st := newTestStore(t, dir)
	if err := st.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !st.IsEnrolled("1001", "CS101") {
		t.Error("valid enrollment row was not linked")
	}
	if st.CourseCountOf("1001") != 1 {
		t.Errorf("student course count = %d, want 1", st.CourseCountOf("1001"))
	}
	if st.EnrolledCount("CS101") != 1 {
		t.Errorf("course enrolled count = %d, want 1", st.EnrolledCount("CS101"))
	}
}

func TestLoadLogsLinkedEnrollmentCount(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "students.csv", "student_id,name\n1001,Alice\n")
	writeFixture(t, dir, "courses.csv", "course_id,name,instructor,day,time\nCS101,Computer Science 101,Prof. Wilson,Monday,13:00-13:50\n")
	writeFixture(t, dir, "enrollments.csv", "student_id,course_id\n"+
		"1001,CS101\n"+
		"9999,CS101\n"+
		"1001,NOPE1\n")

	repos, err := repositories.NewRepositories(dir)
	if err != nil {
		t.Fatalf("NewRepositories: %v", err)
	}

	var buf bytes.Buffer
	st := NewStore(repos, zerolog.New(&buf))
	if err := st.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// The diagnostic reports links actually created, not raw rows read
	if !strings.Contains(buf.String(), `"enrollments":1`) {
		t.Errorf("load log does not report 1 linked enrollment: %s", buf.String())
	}
}

func TestLinkUnlinkKeepBothSides(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "students.csv", "student_id,name\n1001,Alice\n")
	writeFixture(t, dir, "courses.csv", "course_id,name,instructor,day,time\nCS101,Computer Science 101,Prof. Wilson,Monday,13:00-13:50\n")

	st := newTestStore(t, dir)
	if err := st.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	st.Link("1001", "CS101")
	if !st.IsEnrolled("1001", "CS101") || st.EnrolledCount("CS101") != 1 {
		t.Fatal("Link did not record both sides of the relation")
	}

	st.Unlink("1001", "CS101")
	if st.IsEnrolled("1001", "CS101") || st.EnrolledCount("CS101") != 0 || st.CourseCountOf("1001") != 0 {
		t.Fatal("Unlink did not clear both sides of the relation")
	}
}

func TestPersistReloadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "students.csv", "student_id,name\n1001,Alice\n1002,Bob\n1003,Carol\n")
	writeFixture(t, dir, "courses.csv", "course_id,name,instructor,day,time\n"+
		"CS101,Computer Science 101,Prof. Wilson,Monday,13:00-13:50\n"+
		"MATH101,Math 101,Dr. Smith,Monday,11:00-11:50\n"+
		"HIST101,History 101,Dr. Davis,Friday,14:00-14:50\n")

	st := newTestStore(t, dir)
	if err := st.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	st.Link("1001", "CS101")
	st.Link("1001", "MATH101")
	st.Link("1002", "CS101")
	st.Link("1003", "HIST101")

	if err := st.PersistStudents(); err != nil {
		t.Fatalf("PersistStudents: %v", err)
	}
	if err := st.PersistCourses(); err != nil {
		t.Fatalf("PersistCourses: %v", err)
	}
	if err := st.PersistEnrollments(); err != nil {
		t.Fatalf("PersistEnrollments: %v", err)
	}

	reloaded := newTestStore(t, dir)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}

	for _, studentID := range []string{"1001", "1002", "1003"} {
		if _, ok := reloaded.Student(studentID); !ok {
			t.Errorf("student %s missing after reload", studentID)
		}
	}
	for _, courseID := range []string{"CS101", "MATH101", "HIST101"} {
		if _, ok := reloaded.Course(courseID); !ok {
			t.Errorf("course %s missing after reload", courseID)
		}
	}

	// The relation must be set-equal on both sides, order-independent
	for _, studentID := range []string{"1001", "1002", "1003"} {
		want := st.CourseIDsOf(studentID)
		got := reloaded.CourseIDsOf(studentID)
		sort.Strings(want)
		sort.Strings(got)
		if len(got) != len(want) {
			t.Fatalf("student %s: got %v, want %v", studentID, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("student %s: got %v, want %v", studentID, got, want)
				break
			}
		}
	}
	for _, courseID := range []string{"CS101", "MATH101", "HIST101"} {
		if reloaded.EnrolledCount(courseID) != st.EnrolledCount(courseID) {
			t.Errorf("course %s: enrolled count %d, want %d",
				courseID, reloaded.EnrolledCount(courseID), st.EnrolledCount(courseID))
		}
	}
}
