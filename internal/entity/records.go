// Package entity holds the school-records types as the records service
// returns them. Embedded slices (department.instructors, subject.grades, ...)
// are denormalized copies of the same relationship reachable through the
// owning collection's foreign keys; the upstream is authoritative, the cached
// copies are kept in step by the cachesync rules.
package entity

import (
	"strconv"
	"time"
)

// Collection names as they appear in upstream paths and cache keys.
const (
	TypeDepartment   = "departments"
	TypeInstructor   = "instructors"
	TypeStudent      = "students"
	TypeClass        = "classes"
	TypeSubject      = "subjects"
	TypeAssignment   = "assignments"
	TypeRegistration = "registrations"
)

// Record is any upstream row addressable by id. RecordID normalizes the mixed
// int/string ids to a string so patch transforms can match on one shape.
type Record interface {
	RecordID() string
}

type Department struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Classes     []Class      `json:"classes"`
	Students    []Student    `json:"students"`
	Instructors []Instructor `json:"instructors"`
	Subjects    []Subject    `json:"subjects"`
}

func (d Department) RecordID() string { return strconv.Itoa(d.ID) }

type Instructor struct {
	ID           string       `json:"id"`
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	Email        string       `json:"email"`
	Address      string       `json:"address"`
	BirthDay     time.Time    `json:"birth_day"`
	Phone        string       `json:"phone"`
	Gender       bool         `json:"gender"`
	Degree       string       `json:"degree"`
	DepartmentID int          `json:"department_id"`
	Classes      []Class      `json:"classes"`
	Grades       []Grade      `json:"grades"`
	Assignments  []Assignment `json:"assignments"`
}

func (i Instructor) RecordID() string { return i.ID }

type Student struct {
	ID            string         `json:"id"`
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	Email         string         `json:"email"`
	Address       string         `json:"address"`
	BirthDay      time.Time      `json:"birth_day"`
	Phone         string         `json:"phone"`
	Gender        bool           `json:"gender"`
	AcademicYear  int            `json:"academic_year"`
	DepartmentID  int            `json:"department_id"`
	ClassID       string         `json:"class_id"`
	Grades        []Grade        `json:"grades"`
	Registrations []Registration `json:"registrations"`
}

func (s Student) RecordID() string { return s.ID }

type Class struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	MaxStudents      int       `json:"max_students"`
	DepartmentID     int       `json:"department_id"`
	HostInstructorID string    `json:"host_instructor_id"`
	Students         []Student `json:"students"`
}

func (c Class) RecordID() string { return c.ID }

type Subject struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	Credits              int            `json:"credits"`
	ProcessPercentage    int            `json:"process_percentage"`
	MidtermPercentage    int            `json:"midterm_percentage"`
	FinalPercentage      int            `json:"final_percentage"`
	DepartmentID         int            `json:"department_id"`
	Grades               []Grade        `json:"grades"`
	InstructorAssignments []Assignment   `json:"instructor_assignments"`
	StudentRegistrations []Registration `json:"student_registrations"`
}

func (s Subject) RecordID() string { return s.ID }

// Assignment links one instructor to one subject.
type Assignment struct {
	ID           int       `json:"id"`
	SubjectID    string    `json:"subject_id"`
	InstructorID string    `json:"instructor_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (a Assignment) RecordID() string { return strconv.Itoa(a.ID) }

// Registration links one student to one subject.
type Registration struct {
	ID        int    `json:"id"`
	SubjectID string `json:"subject_id"`
	StudentID string `json:"student_id"`
}

func (r Registration) RecordID() string { return strconv.Itoa(r.ID) }

type Grade struct {
	ID           int     `json:"id"`
	StudentID    string  `json:"student_id"`
	SubjectID    string  `json:"subject_id"`
	ProcessScore float64 `json:"process_score"`
	MidtermScore float64 `json:"midterm_score"`
	FinalScore   float64 `json:"final_score"`
}

func (g Grade) RecordID() string { return strconv.Itoa(g.ID) }
