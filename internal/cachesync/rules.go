package cachesync

import (
	"context"
	"strconv"

	"github.com/TheDemonTuan/client-score-management/internal/cache"
	"github.com/TheDemonTuan/client-score-management/internal/entity"
)

type ruleKey struct {
	Entity string
	Action Action
}

// defaultRules is the full dependency table: for each (entity, action), every
// cached collection that embeds a copy of the record and the transform that
// keeps it consistent. A collection missing from a row here is a visible gap,
// not a silently forgotten callback.
func defaultRules() map[ruleKey][]PatchFunc {
	rules := map[ruleKey][]PatchFunc{}

	// Flat-list bookkeeping is identical for every entity.
	ownList[entity.Department](rules, entity.TypeDepartment)
	ownList[entity.Instructor](rules, entity.TypeInstructor)
	ownList[entity.Student](rules, entity.TypeStudent)
	ownList[entity.Class](rules, entity.TypeClass)
	ownList[entity.Subject](rules, entity.TypeSubject)
	ownList[entity.Assignment](rules, entity.TypeAssignment)
	ownList[entity.Registration](rules, entity.TypeRegistration)

	// Instructors are embedded in department.instructors.
	add(rules, entity.TypeInstructor, ActionCreate,
		patchParent(entity.TypeDepartment, instructorDeptID, func(d entity.Department, m Mutation) entity.Department {
			d.Instructors = append(cloneSlice(d.Instructors), m.After.(entity.Instructor))
			return d
		}))
	add(rules, entity.TypeInstructor, ActionUpdate, instructorUpdateDepartments)
	add(rules, entity.TypeInstructor, ActionDelete, instructorDeleteDepartments)

	// Students are embedded in department.students and class.students; both
	// sides are refetched on the next read rather than patched.
	for _, action := range []Action{ActionCreate, ActionUpdate, ActionDelete} {
		add(rules, entity.TypeStudent, action,
			invalidateEntity(entity.TypeDepartment),
			invalidateEntity(entity.TypeClass))
		add(rules, entity.TypeClass, action,
			invalidateEntity(entity.TypeDepartment))
	}

	// Subjects are embedded in department.subjects.
	add(rules, entity.TypeSubject, ActionCreate,
		patchParent(entity.TypeDepartment, subjectDeptID, func(d entity.Department, m Mutation) entity.Department {
			d.Subjects = append(cloneSlice(d.Subjects), m.After.(entity.Subject))
			return d
		}))
	add(rules, entity.TypeSubject, ActionUpdate, invalidateEntity(entity.TypeDepartment))
	add(rules, entity.TypeSubject, ActionDelete, invalidateEntity(entity.TypeDepartment))

	// Assignment create fans out to the embedding instructor and subject.
	add(rules, entity.TypeAssignment, ActionCreate,
		patchParent(entity.TypeInstructor, assignmentInstructorID, func(i entity.Instructor, m Mutation) entity.Instructor {
			i.Assignments = append(cloneSlice(i.Assignments), m.After.(entity.Assignment))
			return i
		}),
		patchParent(entity.TypeSubject, assignmentSubjectID, func(s entity.Subject, m Mutation) entity.Subject {
			s.InstructorAssignments = append(cloneSlice(s.InstructorAssignments), m.After.(entity.Assignment))
			return s
		}))
	add(rules, entity.TypeAssignment, ActionUpdate,
		invalidateEntity(entity.TypeInstructor),
		invalidateEntity(entity.TypeSubject))
	add(rules, entity.TypeAssignment, ActionDelete, assignmentDeleteParents)

	// Registration create fans out to the embedding student and subject.
	add(rules, entity.TypeRegistration, ActionCreate,
		patchParent(entity.TypeStudent, registrationStudentID, func(s entity.Student, m Mutation) entity.Student {
			s.Registrations = append(cloneSlice(s.Registrations), m.After.(entity.Registration))
			return s
		}),
		patchParent(entity.TypeSubject, registrationSubjectID, func(s entity.Subject, m Mutation) entity.Subject {
			s.StudentRegistrations = append(cloneSlice(s.StudentRegistrations), m.After.(entity.Registration))
			return s
		}))
	add(rules, entity.TypeRegistration, ActionUpdate,
		invalidateEntity(entity.TypeStudent),
		invalidateEntity(entity.TypeSubject))
	add(rules, entity.TypeRegistration, ActionDelete, registrationDeleteParents)

	return rules
}

func ownList[E entity.Record](rules map[ruleKey][]PatchFunc, entityType string) {
	add(rules, entityType, ActionCreate, appendOwn[E](), invalidateVariants())
	add(rules, entityType, ActionUpdate, replaceOwn[E](), invalidateVariants())
	add(rules, entityType, ActionDelete, removeOwn[E](), invalidateVariants())
}

func add(rules map[ruleKey][]PatchFunc, entityType string, action Action, patches ...PatchFunc) {
	k := ruleKey{Entity: entityType, Action: action}
	rules[k] = append(rules[k], patches...)
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func instructorDeptID(m Mutation) string {
	rec := m.After
	if m.Action == ActionDelete {
		rec = m.Before
	}
	return strconv.Itoa(rec.(entity.Instructor).DepartmentID)
}

func subjectDeptID(m Mutation) string {
	return strconv.Itoa(m.After.(entity.Subject).DepartmentID)
}

func assignmentInstructorID(m Mutation) string {
	return m.After.(entity.Assignment).InstructorID
}

func assignmentSubjectID(m Mutation) string {
	return m.After.(entity.Assignment).SubjectID
}

func registrationStudentID(m Mutation) string {
	return m.After.(entity.Registration).StudentID
}

func registrationSubjectID(m Mutation) string {
	return m.After.(entity.Registration).SubjectID
}

// instructorUpdateDepartments replaces the embedded copy inside the owning
// department. When the instructor moved between departments the old parent
// would keep a stale copy, so that case invalidates instead.
func instructorUpdateDepartments(ctx context.Context, store cache.Store, m Mutation) error {
	after := m.After.(entity.Instructor)
	if m.BeforeKnown {
		if before, ok := m.Before.(entity.Instructor); ok && before.DepartmentID != after.DepartmentID {
			return store.InvalidateEntity(ctx, entity.TypeDepartment)
		}
	}
	patch := patchParent(entity.TypeDepartment, instructorDeptID, func(d entity.Department, m Mutation) entity.Department {
		out := cloneSlice(d.Instructors)
		for i := range out {
			if out[i].ID == after.ID {
				out[i] = after
			}
		}
		d.Instructors = out
		return d
	})
	return patch(ctx, store, m)
}

// instructorDeleteDepartments removes the embedded copy from the owning
// department, falling back to invalidation when the prior record (and with it
// the department id) was never cached.
func instructorDeleteDepartments(ctx context.Context, store cache.Store, m Mutation) error {
	if !m.BeforeKnown {
		return store.InvalidateEntity(ctx, entity.TypeDepartment)
	}
	before := m.Before.(entity.Instructor)
	patch := patchParent(entity.TypeDepartment, instructorDeptID, func(d entity.Department, m Mutation) entity.Department {
		out := make([]entity.Instructor, 0, len(d.Instructors))
		for _, ins := range d.Instructors {
			if ins.ID != before.ID {
				out = append(out, ins)
			}
		}
		d.Instructors = out
		return d
	})
	return patch(ctx, store, m)
}

func assignmentDeleteParents(ctx context.Context, store cache.Store, m Mutation) error {
	if !m.BeforeKnown {
		if err := store.InvalidateEntity(ctx, entity.TypeInstructor); err != nil {
			return err
		}
		return store.InvalidateEntity(ctx, entity.TypeSubject)
	}
	before := m.Before.(entity.Assignment)
	fromInstructor := patchParent(entity.TypeInstructor,
		func(Mutation) string { return before.InstructorID },
		func(i entity.Instructor, _ Mutation) entity.Instructor {
			out := make([]entity.Assignment, 0, len(i.Assignments))
			for _, a := range i.Assignments {
				if a.ID != before.ID {
					out = append(out, a)
				}
			}
			i.Assignments = out
			return i
		})
	fromSubject := patchParent(entity.TypeSubject,
		func(Mutation) string { return before.SubjectID },
		func(s entity.Subject, _ Mutation) entity.Subject {
			out := make([]entity.Assignment, 0, len(s.InstructorAssignments))
			for _, a := range s.InstructorAssignments {
				if a.ID != before.ID {
					out = append(out, a)
				}
			}
			s.InstructorAssignments = out
			return s
		})
	if err := fromInstructor(ctx, store, m); err != nil {
		return err
	}
	return fromSubject(ctx, store, m)
}

func registrationDeleteParents(ctx context.Context, store cache.Store, m Mutation) error {
	if !m.BeforeKnown {
		if err := store.InvalidateEntity(ctx, entity.TypeStudent); err != nil {
			return err
		}
		return store.InvalidateEntity(ctx, entity.TypeSubject)
	}
	before := m.Before.(entity.Registration)
	fromStudent := patchParent(entity.TypeStudent,
		func(Mutation) string { return before.StudentID },
		func(s entity.Student, _ Mutation) entity.Student {
			out := make([]entity.Registration, 0, len(s.Registrations))
			for _, r := range s.Registrations {
				if r.ID != before.ID {
					out = append(out, r)
				}
			}
			s.Registrations = out
			return s
		})
	fromSubject := patchParent(entity.TypeSubject,
		func(Mutation) string { return before.SubjectID },
		func(s entity.Subject, _ Mutation) entity.Subject {
			out := make([]entity.Registration, 0, len(s.StudentRegistrations))
			for _, r := range s.StudentRegistrations {
				if r.ID != before.ID {
					out = append(out, r)
				}
			}
			s.StudentRegistrations = out
			return s
		})
	if err := fromStudent(ctx, store, m); err != nil {
		return err
	}
	return fromSubject(ctx, store, m)
}
