package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"ai-tutor/internal/dto"
	"ai-tutor/internal/service"
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatOptional(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}

func renderStudents(w io.Writer, resp *dto.StudentsResponse) error {
	ids := make([]string, len(resp.Students))
	for i, id := range resp.Students {
		ids[i] = fmt.Sprintf("%d", id)
	}
	_, err := fmt.Fprintf(w, "%d students\n%s\n", len(ids), strings.Join(ids, "\n"))
	return err
}

func renderConceptTable(w io.Writer, stats []dto.ConceptStatResponse) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CONCEPT\tACCURACY\tATTEMPTS\tWEAK")
	for _, st := range stats {
		weak := ""
		if st.IsWeak {
			weak = "yes"
		}
		fmt.Fprintf(tw, "%s\t%.2f\t%d\t%s\n", st.Concept, st.Accuracy, st.Attempts, weak)
	}
	return tw.Flush()
}

func renderSummary(w io.Writer, resp *dto.StudentSummaryResponse) error {
	fmt.Fprintf(w, "student %d: %d attempts, accuracy %s, avg response %s\n\n",
		resp.StudentID,
		resp.Attempts,
		formatOptional(resp.OverallAccuracy, "%.2f"),
		formatOptional(resp.AvgResponseTime, "%.1fs"),
	)
	return renderConceptTable(w, resp.PerConcept)
}

func renderWeak(w io.Writer, resp *dto.WeakTopicsResponse) error {
	if len(resp.WeakTopics) == 0 {
		_, err := fmt.Fprintf(w, "student %d has no weak concepts (%d concepts attempted)\n", resp.StudentID, len(resp.AllConcepts))
		return err
	}
	fmt.Fprintf(w, "student %d: %d weak of %d concepts attempted\n\n", resp.StudentID, len(resp.WeakTopics), len(resp.AllConcepts))
	return renderConceptTable(w, resp.WeakTopics)
}

func renderCatalog(w io.Writer, resp *dto.ConceptCatalogResponse) error {
	_, err := fmt.Fprintf(w, "%d concepts\n%s\n", len(resp.Concepts), strings.Join(resp.Concepts, "\n"))
	return err
}

func renderCohort(w io.Writer, resp *dto.CohortWeakTopicsResponse) error {
	fmt.Fprintf(w, "dataset %s, %d students\n\n", resp.DatasetVersion, len(resp.Students))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CONCEPT\tWEAK STUDENTS")
	for _, concept := range service.SortedWeakCounts(resp.WeakCounts) {
		fmt.Fprintf(tw, "%s\t%d\n", concept, resp.WeakCounts[concept])
	}
	return tw.Flush()
}
