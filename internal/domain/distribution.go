package domain

import "sort"

// Course addresses the records of one course in one term.
type Course struct {
	BatchYear  string `json:"batch_year"`
	Semester   string `json:"semester"`
	CourseName string `json:"course_name"`
}

type GradeCount struct {
	Grade string `json:"grade"`
	Count int    `json:"count"`
}

// GradeDistribution is ordered by count descending, then grade ascending.
type GradeDistribution []GradeCount

func NewGradeDistribution(records []*GradeRecord) GradeDistribution {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Grade]++
	}

	dist := make(GradeDistribution, 0, len(counts))
	for grade, count := range counts {
		dist = append(dist, GradeCount{Grade: grade, Count: count})
	}

	sort.Slice(dist, func(i, j int) bool {
		if dist[i].Count != dist[j].Count {
			return dist[i].Count > dist[j].Count
		}
		return dist[i].Grade < dist[j].Grade
	})

	return dist
}

func (d GradeDistribution) Map() map[string]int {
	m := make(map[string]int, len(d))
	for _, c := range d {
		m[c.Grade] = c.Count
	}
	return m
}

func (d GradeDistribution) Total() int {
	total := 0
	for _, c := range d {
		total += c.Count
	}
	return total
}
