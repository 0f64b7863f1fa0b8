// Package assets provides the stylesheets used by the Chrome backend.
//
// Two styles are embedded: "report" (10pt body, the default) and "compact"
// (9pt body for dense tables). Setting assets.basePath in the config adds a
// directory whose styles/{name}.css files override the embedded ones; names
// missing from that directory fall back to the embedded styles.
//
// Style names are plain identifiers (letters, digits, '-' and '_'), so a
// name can never address a file outside {basePath}/styles.
package assets
