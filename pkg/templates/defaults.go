package templates

// Placeholders are written as {KEY} and replaced literally.

const DefaultProject = `# {PROJECT_NAME}

> Auto-generated baseline specification from legacy codebase analysis
> Date: {DATE}

## Project Type

Detected technologies: {DETECTED_TECH_LIST}

## Architecture

### Directory Structure

{STRUCTURE_SUMMARY}
`

const DefaultArchitecture = `# System Architecture

> Auto-generated baseline - requires manual refinement

## Technology Stack

{TECH_STACK_DETAILS}

## Components

{SYSTEM_COMPONENTS}

## Design Patterns

[TODO] Add architecture patterns
`

const FeaturesReadme = `# Features

This directory is used to document various system features.

## Usage

Create a separate Markdown file for each major feature, e.g., ` + "`user-authentication.md`" + `.

You can use ` + "`../templates/feature.md.template`" + ` as a template.

## Next Steps

1. Identify core feature modules of the system
2. Create corresponding documentation files for each feature
3. Collaborate with the team to refine feature descriptions

---

*Tip: You can ask your AI assistant to help identify and document features*
`
