package dto

type EquivalenceRequest struct {
	CourseName  string `json:"course_name" validate:"required,max=200"`
	Institution string `json:"institution" validate:"max=200"`
}

type EquivalenceBatchRequest struct {
	Courses []EquivalenceRequest `json:"courses" validate:"required,min=1,max=100,dive"`
}

type StudentCourseRequest struct {
	Name        string  `json:"name" validate:"required"`
	Institution string  `json:"institution"`
	Grade       float64 `json:"grade" validate:"gte=0,lte=31"`
}

type RequiredCourseRequest struct {
	CourseName  string  `json:"course_name" validate:"required"`
	Institution string  `json:"institution"`
	MinGrade    float64 `json:"min_grade" validate:"gte=0,lte=31"`
}

type RequirementMatchRequest struct {
	StudentCourse  StudentCourseRequest  `json:"student_course"`
	RequiredCourse RequiredCourseRequest `json:"required_course"`
	MinSimilarity  float64               `json:"min_similarity" validate:"gte=0,lte=1"`
}
