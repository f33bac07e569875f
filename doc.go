// Package custody provides descriptive statistics over records of deaths
// in custody.
//
//
// Data Representation: Data Sets
//
// A Dataset is an ordered slice of Records as read from a delimited file
// by ReadCSV or ReadFile. The five analysed columns are fields of Record,
// all other columns are kept verbatim in Record.Extra. Missing cells are
// the empty string.
//
// Process derives the binned race and age of every record and caches
// them next to the source values:
//     race: the 13 Asian and Pacific Islander sub-ethnicities collapse to
//           "Asian/Oceanic", everything else passes through
//     age:  0-29, 30-39, 40-49, 50-59, 60-69, 70+ and "Unknown" for "Unk"
//
//
// Cross Tabulation
//
// CrossTab is the single reduction of the package: it counts records per
// (bin, outcome category) for a grouping field and an outcome field. The
// Dimensions (race, age, gender) and Outcomes (manner of death, custody
// status) are configuration values carrying their fixed enumerations:
//    for _, d := range custody.Dimensions() {
//        for _, o := range custody.Outcomes() {
//            t, err := custody.CrossTab(ds, d.Spec(o, custody.Permissive))
//            ...
//        }
//    }
//
//
// Plots
//
// A Plot describes a bar chart (discrete scale plus layers) without
// drawing it. NewCrossTabPlot selects and orders the series of a Table;
// package geom renders plots.
package custody
