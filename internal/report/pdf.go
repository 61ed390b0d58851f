// Package report renders section results as PDF documents.
package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/runlevel0/cross-section/internal/material"
	"github.com/runlevel0/cross-section/internal/section"
)

// ItemRow summarises one part of an assembly for the parts table.
type ItemRow struct {
	Label string
	Kind  string
	Area  float64
	Void  bool
}

// Input collects everything a report can carry. Optional blocks are nil or
// empty when the run did not produce them.
type Input struct {
	Title       string
	Name        string
	Description string

	Props    section.Properties
	Weighted *section.WeightedProperties
	Material *material.Material

	Idealised *section.IdealisedSection
	Items     []ItemRow
}

// Write renders the report to w as a single-page PDF.
func Write(w io.Writer, in Input) error {
	if in.Title == "" {
		in.Title = "Cross-Section Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if in.Name != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Section: %s", in.Name))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	if in.Description != "" {
		pdf.MultiCell(0, 6, in.Description, "", "L", false)
		pdf.Ln(4)
	}

	heading := func(text string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, text)
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
	}
	row := func(label, value string) {
		pdf.Cell(60, 6, label)
		pdf.Cell(0, 6, value)
		pdf.Ln(6)
	}

	heading("Geometry")
	row("Area", fmt.Sprintf("%.6g", in.Props.Area))
	row("Centroid", fmt.Sprintf("(%.6g, %.6g)", in.Props.Centroid.X, in.Props.Centroid.Y))
	row("Ixx", fmt.Sprintf("%.6g", in.Props.Ixx))
	row("Iyy", fmt.Sprintf("%.6g", in.Props.Iyy))
	row("Ixy", fmt.Sprintf("%.6g", in.Props.Ixy))
	pdf.Ln(4)

	heading("Principal Axes")
	row("I1", fmt.Sprintf("%.6g", in.Props.I1))
	row("I2", fmt.Sprintf("%.6g", in.Props.I2))
	row("Angle", fmt.Sprintf("%.4f deg", in.Props.Angle*180/math.Pi))
	row("rx", fmt.Sprintf("%.6g", in.Props.Rx))
	row("ry", fmt.Sprintf("%.6g", in.Props.Ry))
	row("J", fmt.Sprintf("%.6g", in.Props.J))
	pdf.Ln(4)

	if in.Material != nil {
		heading("Material")
		if in.Material.Name != "" {
			row("Name", in.Material.Name)
		}
		row("Density", fmt.Sprintf("%.6g", in.Material.Density))
		row("Modulus", fmt.Sprintf("%.6g", in.Material.Modulus))
		pdf.Ln(4)
	}

	if in.Weighted != nil {
		heading("Weighted Properties")
		row("Mass per length", fmt.Sprintf("%.6g", in.Weighted.Mass))
		row("EA", fmt.Sprintf("%.6g", in.Weighted.EA))
		row("EIxx", fmt.Sprintf("%.6g", in.Weighted.EIxx))
		row("EIyy", fmt.Sprintf("%.6g", in.Weighted.EIyy))
		pdf.Ln(4)
	}

	if in.Idealised != nil {
		heading("Idealisation")
		row("Shape", string(in.Idealised.Kind))
		switch in.Idealised.Kind {
		case section.Rectangle:
			row("Width", fmt.Sprintf("%.6g", in.Idealised.Width))
			row("Height", fmt.Sprintf("%.6g", in.Idealised.Height))
		case section.Ring:
			row("Outer radius", fmt.Sprintf("%.6g", in.Idealised.OuterRadius))
			row("Inner radius", fmt.Sprintf("%.6g", in.Idealised.InnerRadius))
		}
		if in.Idealised.Assumption != "" {
			row("Assumption", in.Idealised.Assumption)
		}
		pdf.Ln(4)
	}

	if len(in.Items) > 0 {
		heading("Parts")
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(60, 6, "Part")
		pdf.Cell(40, 6, "Kind")
		pdf.Cell(40, 6, "Area")
		pdf.Cell(0, 6, "Role")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		for _, item := range in.Items {
			role := "solid"
			if item.Void {
				role = "void"
			}
			pdf.Cell(60, 6, item.Label)
			pdf.Cell(40, 6, item.Kind)
			pdf.Cell(40, 6, fmt.Sprintf("%.6g", item.Area))
			pdf.Cell(0, 6, role)
			pdf.Ln(6)
		}
	}

	return pdf.Output(w)
}

// WriteFile renders the report to a file, creating parent directories.
func WriteFile(path string, in Input) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, in); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
