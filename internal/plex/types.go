// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package plex

import "encoding/xml"

// IdentityContainer is the MediaContainer returned by GET /.
type IdentityContainer struct {
	XMLName           xml.Name `xml:"MediaContainer"`
	MachineIdentifier string   `xml:"machineIdentifier,attr"`
	FriendlyName      string   `xml:"friendlyName,attr"`
	Version           string   `xml:"version,attr"`
	Platform          string   `xml:"platform,attr"`
}

// SectionsContainer is the MediaContainer returned by GET /library/sections.
type SectionsContainer struct {
	XMLName     xml.Name    `xml:"MediaContainer"`
	Size        int         `xml:"size,attr"`
	Directories []Directory `xml:"Directory"`
}

// Directory is one library section.
type Directory struct {
	Key   string `xml:"key,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

// LibraryContainer is the MediaContainer returned by
// GET /library/sections/{key}/all. Movie libraries list <Video> children,
// show and collection libraries list <Directory> children.
type LibraryContainer struct {
	XMLName     xml.Name  `xml:"MediaContainer"`
	Size        int       `xml:"size,attr"`
	TotalSize   int       `xml:"totalSize,attr"`
	Videos      []RawItem `xml:"Video"`
	Directories []RawItem `xml:"Directory"`
}

// Items returns the container's item elements regardless of which tag name
// the section used. Video wins when both are present.
func (c *LibraryContainer) Items() []RawItem {
	if len(c.Videos) > 0 {
		return c.Videos
	}
	if c.Directories == nil {
		return []RawItem{}
	}
	return c.Directories
}

// RawItem is an item element with its attributes kept as strings. Numeric
// parsing is left to the normalizer so a malformed attribute degrades to a
// default instead of failing the whole document.
type RawItem struct {
	RatingKey     string `xml:"ratingKey,attr"`
	Key           string `xml:"key,attr"`
	Title         string `xml:"title,attr"`
	Year          string `xml:"year,attr"`
	Summary       string `xml:"summary,attr"`
	Rating        string `xml:"rating,attr"`
	ContentRating string `xml:"contentRating,attr"`
	Duration      string `xml:"duration,attr"`
	Thumb         string `xml:"thumb,attr"`
	Art           string `xml:"art,attr"`
	Type          string `xml:"type,attr"`
	AddedAt       string `xml:"addedAt,attr"`
	ViewCount     string `xml:"viewCount,attr"`
	Genres        []Tag  `xml:"Genre"`
}

// Tag is a nested <Genre tag="..."/> style element.
type Tag struct {
	Tag string `xml:"tag,attr"`
}
