package templates

const fence = "````"

const BaselineProject = `# Project Overview

> Auto-generated baseline specification from legacy codebase analysis
> Date: {DATE}

## Project Type

Detected technologies: {DETECTED_TECH_LIST}

## Architecture

### Directory Structure

{STRUCTURE_SUMMARY}

### Dependencies

{DEPENDENCY_LIST}

## Existing Documentation

{EXISTING_DOCS}

## Next Steps

1. Review this baseline specification
2. Refine with business context and requirements
3. Document key features in ` + "`features/`" + ` directory
4. Add architecture decisions to ` + "`architecture.md`" + `
5. Begin using OpenSpec for new changes
`

const BaselineArchitecture = `# System Architecture

> Auto-generated baseline - requires manual refinement

## Technology Stack

{TECH_LIST}

## Components

### Source Code Structure

{SOURCE_COMPONENTS}
{API_SECTION}{DATABASE_SECTION}
## Design Patterns

**TODO**: Document architectural patterns used:
- [ ] MVC / MVVM / Clean Architecture
- [ ] Dependency Injection
- [ ] Repository Pattern
- [ ] Service Layer
- [ ] API Gateway
- [ ] Microservices / Monolith

## Infrastructure

**TODO**: Document deployment and infrastructure:
- [ ] Hosting platform
- [ ] CI/CD pipeline
- [ ] Monitoring and logging
- [ ] Scalability approach
`

const BaselineFeaturesReadme = `# Features

Document each major feature of the system in separate markdown files.

## Template

Create a file for each feature (e.g., ` + "`user-authentication.md`" + `):
` + fence + `markdown
# [Feature Name]

## Purpose
What problem does this feature solve?

## User Stories
- As a [user type], I want to [action] so that [benefit]

## Functionality
Detailed description of what the feature does

## API/Interface
How users/systems interact with this feature

## Dependencies
What this feature depends on

## Technical Notes
Implementation details worth documenting
` + fence + `

## Next Steps

1. Identify core features from codebase
2. Create a file for each feature
3. Collaborate with team to document accurately
`
