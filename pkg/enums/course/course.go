package course

type Course struct {
	Name string
}

func (c Course) Code() string {
	return c.Name
}

func (c Course) String() string {
	return c.Name
}

type Enum struct {
	Starters Course
	Mains    Course
	Dessert  Course
}

var Courses = Enum{
	Starters: Course{Name: "Starters"},
	Mains:    Course{Name: "Mains"},
	Dessert:  Course{Name: "Dessert"},
}

// All lists the courses in menu order.
var All = []Course{
	Courses.Starters,
	Courses.Mains,
	Courses.Dessert,
}

// ByName returns the course for a given name, or nil if not found.
// Matching is exact: "mains" is not a course.
func ByName(name string) *Course {
	for _, c := range All {
		if c.Name == name {
			return &c
		}
	}
	return nil
}

// Valid reports whether name is one of the menu courses.
func Valid(name string) bool {
	return ByName(name) != nil
}
