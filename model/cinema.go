package model

import "time"

type Cinema struct {
	ID           int       `json:"id"`
	Class        ClassType `json:"class"`
	CineplexCode string    `json:"cineplexCode"`
}

type Showtime struct {
	ID       string    `json:"id"`
	CinemaID int       `json:"cinemaId"`
	MovieID  int       `json:"movieId"`
	Datetime time.Time `json:"datetime"`
	ShowType ShowType  `json:"showType"`
	Seats    SeatGrid  `json:"seats"`
}

// Clone returns a copy whose seat grid is independent of the original.
func (s Showtime) Clone() Showtime {
	clone := s
	clone.Seats = s.Seats.Clone()
	return clone
}

type Movie struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Blockbuster bool       `json:"blockbuster"`
	Status      ShowStatus `json:"status"`
}
